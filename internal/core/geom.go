// Package core provides UI-agnostic building blocks for the terminal
// front-ends: a colored character buffer, semantic actions and geometry.
// It has no external dependencies (especially no Bubble Tea) so the drawing
// code stays pure and testable.
package core

// Rect is an axis-aligned rectangle in character cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
// When hi < lo the result is lo.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// ScrollInto returns the smallest offset change that keeps pos inside a
// window of the given size starting at offset, within [0, total-size].
func ScrollInto(offset, size, total, pos int) int {
	if size >= total {
		return 0
	}
	if pos < offset {
		offset = pos
	}
	if pos >= offset+size {
		offset = pos - size + 1
	}
	return Clamp(offset, 0, total-size)
}
