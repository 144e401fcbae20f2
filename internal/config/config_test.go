package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}

	w, h := cfg.GridSize()
	if w != 100 || h != 90 {
		t.Errorf("GridSize() = %dx%d, expected 100x90", w, h)
	}
	if cfg.StepDelay() != 100*time.Millisecond {
		t.Errorf("StepDelay() = %v, expected 100ms", cfg.StepDelay())
	}
	if cfg.Simulation.InitialDensity != 0.3 {
		t.Errorf("InitialDensity = %v, expected 0.3", cfg.Simulation.InitialDensity)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"negative height", func(c *Config) { c.Display.Height = -10 }},
		{"zero cell size", func(c *Config) { c.Display.CellSize = 0 }},
		{"cell size larger than display", func(c *Config) { c.Display.CellSize = 2000 }},
		{"cell size does not divide width", func(c *Config) { c.Display.Width = 1005 }},
		{"cell size does not divide height", func(c *Config) { c.Display.Height = 905 }},
		{"zero delay", func(c *Config) { c.Simulation.StepDelayMS = 0 }},
		{"negative density", func(c *Config) { c.Simulation.InitialDensity = -0.1 }},
		{"density above one", func(c *Config) { c.Simulation.InitialDensity = 1.01 }},
		{"unknown rule", func(c *Config) { c.Simulation.Rule = "seeds" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	cfg := Default()
	cfg.Simulation.InitialDensity = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("density 0 should be valid: %v", err)
	}
	cfg.Simulation.InitialDensity = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("density 1 should be valid: %v", err)
	}
	cfg.Simulation.Rule = "conway"
	if err := cfg.Validate(); err != nil {
		t.Errorf("conway rule should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("display:\n  width: 200\n  height: 100\n  cell_size: 20\nsimulation:\n  rule: conway\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	w, h := cfg.GridSize()
	if w != 10 || h != 5 {
		t.Errorf("GridSize() = %dx%d, expected 10x5", w, h)
	}
	if cfg.Simulation.Rule != "conway" {
		t.Errorf("Rule = %q, expected conway", cfg.Simulation.Rule)
	}
	// Unset values keep their defaults.
	if cfg.Simulation.StepDelayMS != 100 {
		t.Errorf("StepDelayMS = %d, expected default 100", cfg.Simulation.StepDelayMS)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display:\n  cell_size: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("display: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestFitTerminal(t *testing.T) {
	cfg := FitTerminal(Default(), 80, 24, 3)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fitted config should be valid: %v", err)
	}
	w, h := cfg.GridSize()
	if w != 80 || h != 21 {
		t.Errorf("GridSize() = %dx%d, expected 80x21", w, h)
	}

	tiny := FitTerminal(Default(), 0, 2, 3)
	if w, h := tiny.GridSize(); w != 1 || h != 1 {
		t.Errorf("tiny terminal GridSize() = %dx%d, expected 1x1", w, h)
	}
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Rule = "conway"
	cfg.Simulation.Seed = 99

	s, err := cfg.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if s.Width != 100 || s.Height != 90 {
		t.Errorf("Settings() grid = %dx%d, expected 100x90", s.Width, s.Height)
	}
	if s.Rule != life.ConwayRule {
		t.Errorf("Settings() rule = %v, expected %v", s.Rule, life.ConwayRule)
	}
	if s.Seed != 99 || s.Density != 0.3 {
		t.Errorf("Settings() seed=%d density=%v", s.Seed, s.Density)
	}
}

func TestSettingsZeroSeedUsesClock(t *testing.T) {
	s, err := Default().Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if s.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestSettingsUnknownRule(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Rule = "highlife"
	if _, err := cfg.Settings(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Settings() error = %v, expected ErrInvalidConfig", err)
	}
}
