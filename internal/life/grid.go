// Package life implements the cellular automaton engine: the toroidal grid,
// the transition function and the controller that gates user intents.
// It has no UI dependencies so that the logic stays deterministic and testable.
package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is created with a non-positive size.
var ErrInvalidDimensions = errors.New("life: invalid grid dimensions")

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Grid is a dense matrix of cells stored in row-major order: index = row*w + col.
// Every in-range coordinate always holds exactly one state.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates a grid of the given size with every cell dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		w:     width,
		h:     height,
		cells: make([]Cell, width*height),
	}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
// Intended for tests and fixed literals.
func MustGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, col, g.w, g.h))
	}
	return row*g.w + col
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set overwrites the cell at (row, col) in place.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// CloneWith builds a new grid of the same size where each cell is produced by
// transform. The receiver is never modified, so transform may read it freely.
func (g *Grid) CloneWith(transform func(row, col int) Cell) *Grid {
	next := &Grid{
		w:     g.w,
		h:     g.h,
		cells: make([]Cell, len(g.cells)),
	}
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			next.cells[row*g.w+col] = transform(row, col)
		}
	}
	return next
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// SameSize reports whether both grids have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.w == other.w && g.h == other.h
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for row := 0; row < g.h; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.w; col++ {
			if g.cells[row*g.w+col] == Alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of '#'/'.' characters, the inverse of String.
// Any character other than '#' or 'O' is read as dead. Rows must have equal length.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	width := len(strings.TrimSpace(lines[0]))
	g, err := NewGrid(width, len(lines))
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, row, len(line), width)
		}
		for col := 0; col < width; col++ {
			if line[col] == '#' || line[col] == 'O' {
				g.Set(row, col, Alive)
			}
		}
	}
	return g, nil
}
