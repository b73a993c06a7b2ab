package grid

// Grid is the working state of one generation run. It is not safe for
// concurrent use; a run owns its Grid exclusively.
type Grid struct {
	width, height int
	// cells is stored x-major: index x*height + y.
	cells []CellState
	hor   [][]bool // [w-1][h]
	ver   [][]bool // [w][h-1]
}

// New allocates a w×h grid with every cell Empty and every door closed.
// Returns ErrBadDimensions if w or h is not positive.
// Complexity: O(W×H) time and memory.
func New(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		width:  w,
		height: h,
		cells:  make([]CellState, w*h),
		hor:    newBoolArray(w-1, h),
		ver:    newBoolArray(w, h-1),
	}, nil
}

// newBoolArray allocates a cols×rows [x][y] array backed by one slice.
func newBoolArray(cols, rows int) [][]bool {
	out := make([][]bool, cols)
	backing := make([]bool, cols*rows)
	for x := range out {
		out[x] = backing[x*rows : (x+1)*rows : (x+1)*rows]
	}
	return out
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) index(p Point) int {
	return p.X*g.height + p.Y
}

// State returns the state of cell p. p must be in bounds.
func (g *Grid) State(p Point) CellState {
	return g.cells[g.index(p)]
}

// SetState overwrites the state of cell p. p must be in bounds.
func (g *Grid) SetState(p Point, s CellState) {
	g.cells[g.index(p)] = s
}

// StateIs returns a predicate matching in-bounds cells in state s, suitable
// as the keep argument of Neighbors.
func (g *Grid) StateIs(s CellState) func(Point) bool {
	return func(p Point) bool {
		return g.cells[g.index(p)] == s
	}
}

// Count returns how many cells are in state s.
// Complexity: O(W×H).
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds orthogonal neighbors of p in the order
// Left, Right, Up, Down, each paired with the direction that reaches it.
// If keep is non-nil, only neighbors for which keep returns true are kept;
// keep is never called with an out-of-bounds point.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point, keep func(Point) bool) []Neighbor {
	out := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		q := p.Step(d)
		if !g.InBounds(q) {
			continue
		}
		if keep != nil && !keep(q) {
			continue
		}
		out = append(out, Neighbor{Point: q, Dir: d})
	}
	return out
}

// Each calls fn for every cell in scan order: x-major, y-minor.
func (g *Grid) Each(fn func(p Point, s CellState)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			p := Point{X: x, Y: y}
			fn(p, g.cells[g.index(p)])
		}
	}
}
