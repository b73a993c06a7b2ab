package rooms

import (
	"math/rand"

	"github.com/katalvlaran/roomgen/grid"
)

// elaborate scans every Body cell in x-major order, records dead ends and
// adds loop doors. It returns the chest locations in scan order.
// Complexity: O(W×H).
func elaborate(g *grid.Grid, chance float64, rng *rand.Rand) []grid.Point {
	var chests []grid.Point
	g.Each(func(p grid.Point, s grid.CellState) {
		if s != grid.Body {
			return
		}
		if elaborateCell(g, p, chance, rng) {
			chests = append(chests, p)
		}
	})
	return chests
}

// elaborateCell processes one Body cell and reports whether it is a dead end.
//
// Directions considered are those toward Body neighbors, regardless of door
// state. A cell with exactly one such neighbor is a dead end and is left as
// is. A cell with more than one open door toward them is left as is. A cell
// with exactly one open door (its trunk) gets one more door at random, then
// another each time a uniform draw in [0,1) is ≤ chance, while directions
// remain. A cell with no open door at all (single-cell layouts) is left as is.
func elaborateCell(g *grid.Grid, p grid.Point, chance float64, rng *rand.Rand) bool {
	nbrs := g.Neighbors(p, g.StateIs(grid.Body))
	if len(nbrs) == 1 {
		return true
	}

	dirs := make([]grid.Direction, 0, len(nbrs))
	trunk := -1
	for _, n := range nbrs {
		if g.Door(p, n.Dir) {
			if trunk >= 0 {
				return false
			}
			trunk = len(dirs)
		}
		dirs = append(dirs, n.Dir)
	}
	if trunk < 0 {
		return false
	}
	dirs = append(dirs[:trunk], dirs[trunk+1:]...)

	// At least two structural neighbors, so one direction is always left.
	var d grid.Direction
	d, dirs = pickDirection(dirs, rng)
	g.SetDoor(p, d, true)

	for len(dirs) > 0 && rng.Float64() <= chance {
		d, dirs = pickDirection(dirs, rng)
		g.SetDoor(p, d, true)
	}
	return false
}
