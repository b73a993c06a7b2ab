package rooms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgen/grid"
)

// bodyGrid returns a w×h grid with every cell Body and every door closed.
func bodyGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	g.Each(func(p grid.Point, _ grid.CellState) {
		g.SetState(p, grid.Body)
	})
	return g
}

// openDoors counts the open doors around p.
func openDoors(g *grid.Grid, p grid.Point) int {
	n := 0
	for _, nb := range g.Neighbors(p, nil) {
		if g.Door(p, nb.Dir) {
			n++
		}
	}
	return n
}

// totalDoors counts every open door of g.
func totalDoors(g *grid.Grid) int {
	n := 0
	for _, col := range g.HorDoors() {
		for _, open := range col {
			if open {
				n++
			}
		}
	}
	for _, col := range g.VerDoors() {
		for _, open := range col {
			if open {
				n++
			}
		}
	}
	return n
}
