package life

// neighborOffsets are the eight (drow, dcol) pairs around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Wrap maps any (row, col) onto the torus so it always lands inside g.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// CountLiveNeighbors returns how many of the eight toroidal neighbors of
// (row, col) are alive. Edges wrap to the opposite edge, corners wrap diagonally.
func CountLiveNeighbors(g *Grid, row, col int) int {
	n := 0
	for _, off := range neighborOffsets {
		r, c := g.Wrap(row+off[0], col+off[1])
		if g.cells[r*g.w+c] == Alive {
			n++
		}
	}
	return n
}

// NextGeneration computes the generation after g under rule.
// Every cell is decided from g alone and the result is a new grid; g is left untouched.
func NextGeneration(g *Grid, rule Rule) *Grid {
	return g.CloneWith(func(row, col int) Cell {
		return rule.Next(g.Get(row, col), CountLiveNeighbors(g, row, col))
	})
}
