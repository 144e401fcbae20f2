package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/rules"
)

// Settings converts the configuration into controller settings.
// A zero seed is replaced with one derived from the current time.
func (c Config) Settings() (life.Settings, error) {
	preset, err := rules.Lookup(c.Simulation.Rule)
	if err != nil {
		return life.Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	w, h := c.GridSize()
	seed := c.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return life.Settings{
		Width:   w,
		Height:  h,
		Rule:    preset.Rule,
		Density: c.Simulation.InitialDensity,
		Seed:    seed,
	}, nil
}
