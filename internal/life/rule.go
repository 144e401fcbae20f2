package life

import (
	"strconv"
	"strings"
)

// Counts is a set of live-neighbor counts in [0, 8], stored as a bitmask.
type Counts uint16

// CountsOf builds a set from the given neighbor counts. Values outside [0, 8] are ignored.
func CountsOf(ns ...int) Counts {
	var c Counts
	for _, n := range ns {
		if n >= 0 && n <= 8 {
			c |= 1 << uint(n)
		}
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	if n < 0 || n > 8 {
		return false
	}
	return c&(1<<uint(n)) != 0
}

// String lists the counts in ascending order, e.g. "123".
func (c Counts) String() string {
	var sb strings.Builder
	for n := 0; n <= 8; n++ {
		if c.Has(n) {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// Rule decides the next state of a cell from its live-neighbor count.
type Rule struct {
	Birth   Counts // Counts at which a dead cell becomes alive
	Survive Counts // Counts at which a live cell stays alive
}

var (
	// DefaultRule is the rule this simulator ships with: a live cell survives
	// with 1, 2 or 3 live neighbors and a dead cell is born with 1 or 2.
	DefaultRule = Rule{Birth: CountsOf(1, 2), Survive: CountsOf(1, 2, 3)}

	// ConwayRule is the canonical Game of Life rule, B3/S23.
	ConwayRule = Rule{Birth: CountsOf(3), Survive: CountsOf(2, 3)}
)

// Next returns the state a cell in state c moves to with n live neighbors.
func (r Rule) Next(c Cell, n int) Cell {
	if c == Alive {
		if r.Survive.Has(n) {
			return Alive
		}
		return Dead
	}
	if r.Birth.Has(n) {
		return Alive
	}
	return Dead
}

// String returns the rule in B/S notation, e.g. "B12/S123".
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survive.String()
}
