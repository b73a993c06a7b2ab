package rooms

import "github.com/katalvlaran/roomgen/grid"

// assemble packages the final grid state into a Result. Every array is a
// fresh allocation; the grid is not referenced afterwards.
func assemble(g *grid.Grid, big [][]bool, chests []grid.Point) *Result {
	w, h := g.Width(), g.Height()
	occupied := make([][]bool, w)
	backing := make([]bool, w*h)
	for x := range occupied {
		occupied[x] = backing[x*h : (x+1)*h : (x+1)*h]
	}
	g.Each(func(p grid.Point, s grid.CellState) {
		occupied[p.X][p.Y] = s == grid.Body
	})

	return &Result{
		Width:    w,
		Height:   h,
		Occupied: occupied,
		BigCells: big,
		HorDoors: g.HorDoors(),
		VerDoors: g.VerDoors(),
		Chests:   chests,
	}
}

// InBounds reports whether p lies within the layout.
func (r *Result) InBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// InBigCell reports whether p is one of the four cells of a merged big room.
func (r *Result) InBigCell(p grid.Point) bool {
	if !r.InBounds(p) {
		return false
	}
	for x := p.X - 1; x <= p.X; x++ {
		for y := p.Y - 1; y <= p.Y; y++ {
			if x >= 0 && y >= 0 && x < len(r.BigCells) && y < len(r.BigCells[x]) && r.BigCells[x][y] {
				return true
			}
		}
	}
	return false
}

// Walkable reports whether p is floor: an occupied cell or part of a big room.
func (r *Result) Walkable(p grid.Point) bool {
	return r.InBounds(p) && (r.Occupied[p.X][p.Y] || r.InBigCell(p))
}

// BigCellCount returns the number of merged big rooms.
func (r *Result) BigCellCount() int {
	n := 0
	for x := range r.BigCells {
		for _, b := range r.BigCells[x] {
			if b {
				n++
			}
		}
	}
	return n
}
