package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 1000x900 display with
// 10-pixel cells (a 100x90 grid), 100ms per generation and 30% density.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:    1000,
			Height:   900,
			CellSize: 10,
		},
		Simulation: SimulationConfig{
			StepDelayMS:    100,
			InitialDensity: 0.3,
			Rule:           "default",
			Seed:           0,
		},
		Theme: ThemeConfig{
			Alive:  "0",
			Dead:   "15",
			Grid:   "252",
			Cursor: "208",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
