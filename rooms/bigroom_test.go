package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgen/grid"
)

// linkAll opens every door of g.
func linkAll(g *grid.Grid) {
	g.Each(func(p grid.Point, _ grid.CellState) {
		for _, n := range g.Neighbors(p, nil) {
			g.SetDoor(p, n.Dir, true)
		}
	})
}

func TestMerge_SingleBlock(t *testing.T) {
	g := bodyGrid(t, 2, 2)
	linkAll(g)

	big := merge(g, rngFromSeed(1))
	assert.Equal(t, [][]bool{{true}}, big)
	assert.Equal(t, 4, g.Count(grid.Empty), "members are absorbed")
	assert.Zero(t, totalDoors(g))
}

// TestMerge_Strip: in a fully linked 4×2 strip the candidates are corners
// (0,0), (1,0), (2,0). Picking the middle one excludes both others; picking
// an end leaves the opposite end.
func TestMerge_Strip(t *testing.T) {
	seen := map[int]bool{}
	for seed := int64(1); seed <= 40; seed++ {
		g := bodyGrid(t, 4, 2)
		linkAll(g)
		big := merge(g, rngFromSeed(seed))
		require.Len(t, big, 3)

		n := 0
		for x := range big {
			if big[x][0] {
				n++
			}
		}
		switch {
		case big[1][0]:
			assert.Equal(t, 1, n)
			assert.Equal(t, 4, g.Count(grid.Body))
		default:
			assert.True(t, big[0][0] && big[2][0], "seed %d: %v", seed, big)
			assert.Equal(t, 2, n)
			assert.Zero(t, g.Count(grid.Body))
			// Only the two doors joining the rooms survive.
			assert.Equal(t, 2, totalDoors(g))
		}
		seen[n] = true
	}
	assert.Len(t, seen, 2, "both outcomes should appear over 40 seeds")
}

func TestMerge_RequiresAllFourDoors(t *testing.T) {
	g := bodyGrid(t, 2, 2)
	linkAll(g)
	g.SetDoor(grid.Point{X: 1, Y: 1}, grid.Up, false)

	big := merge(g, rngFromSeed(1))
	assert.Equal(t, [][]bool{{false}}, big)
	assert.Equal(t, 4, g.Count(grid.Body))
	assert.Equal(t, 3, totalDoors(g))
}

func TestMerge_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}} {
		g := bodyGrid(t, dims[0], dims[1])
		linkAll(g)
		big := merge(g, rngFromSeed(1))
		assert.Len(t, big, dims[0]-1)
		for x := range big {
			assert.Empty(t, big[x])
		}
	}
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 0, chebyshev(grid.Point{X: 2, Y: 2}, grid.Point{X: 2, Y: 2}))
	assert.Equal(t, 1, chebyshev(grid.Point{X: 2, Y: 2}, grid.Point{X: 3, Y: 1}))
	assert.Equal(t, 3, chebyshev(grid.Point{X: 0, Y: 4}, grid.Point{X: 2, Y: 1}))
}
