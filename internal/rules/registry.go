// Package rules provides a registry of named transition rule presets.
// Presets register themselves in init(), allowing configuration and the CLI
// to refer to rules by name without hardcoding them.
package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// DefaultID is the preset used when configuration names no rule.
const DefaultID = "default"

// Preset is a named rule.
type Preset struct {
	ID    string
	Title string
	Rule  life.Rule
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

func init() {
	Register(Preset{
		ID:    DefaultID,
		Title: "Default (survive 1-3, born 1-2)",
		Rule:  life.DefaultRule,
	})
	Register(Preset{
		ID:    "conway",
		Title: "Conway's Game of Life",
		Rule:  life.ConwayRule,
	})
}

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("rules: preset %q already registered", p.ID))
	}
	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the preset with the given ID.
// An empty ID resolves to DefaultID.
func Lookup(id string) (Preset, error) {
	if id == "" {
		id = DefaultID
	}

	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("rules: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
