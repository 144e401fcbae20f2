// Package config provides YAML-based configuration loading and validation
// for the simulator. Configuration is read once at startup and never changes.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/rules"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the simulator.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// DisplayConfig describes the display area the grid is derived from.
type DisplayConfig struct {
	Width    int `yaml:"width"`     // Display width in pixels (or terminal columns)
	Height   int `yaml:"height"`    // Display height in pixels (or terminal rows)
	CellSize int `yaml:"cell_size"` // Size of one cell in the same unit
}

// SimulationConfig defines engine parameters.
type SimulationConfig struct {
	StepDelayMS    int     `yaml:"step_delay_ms"`
	InitialDensity float64 `yaml:"initial_density"`
	Rule           string  `yaml:"rule"`
	Seed           int64   `yaml:"seed"` // 0 means seed from the current time
}

// ThemeConfig holds terminal colors (ANSI 256 codes or hex) for rendering.
type ThemeConfig struct {
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
	Grid   string `yaml:"grid"`
	Cursor string `yaml:"cursor"`
}

// GridSize returns the grid dimensions in cells.
func (c Config) GridSize() (width, height int) {
	if c.Display.CellSize <= 0 {
		return 0, 0
	}
	return c.Display.Width / c.Display.CellSize, c.Display.Height / c.Display.CellSize
}

// StepDelay returns the delay between automatic generations.
func (c Config) StepDelay() time.Duration {
	return time.Duration(c.Simulation.StepDelayMS) * time.Millisecond
}

// Validate checks that the configuration describes a usable simulation.
func (c Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d must be positive", ErrInvalidConfig, d.Width, d.Height)
	}
	if d.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalidConfig, d.CellSize)
	}
	if d.CellSize > d.Width || d.CellSize > d.Height {
		return fmt.Errorf("%w: cell_size %d larger than display %dx%d", ErrInvalidConfig, d.CellSize, d.Width, d.Height)
	}
	if d.Width%d.CellSize != 0 || d.Height%d.CellSize != 0 {
		return fmt.Errorf("%w: cell_size %d does not divide display %dx%d", ErrInvalidConfig, d.CellSize, d.Width, d.Height)
	}

	s := c.Simulation
	if s.StepDelayMS <= 0 {
		return fmt.Errorf("%w: step_delay_ms %d must be positive", ErrInvalidConfig, s.StepDelayMS)
	}
	if s.InitialDensity < 0 || s.InitialDensity > 1 {
		return fmt.Errorf("%w: initial_density %v outside [0, 1]", ErrInvalidConfig, s.InitialDensity)
	}
	if s.Rule != "" && !rules.Exists(s.Rule) {
		return fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, s.Rule)
	}
	return nil
}
