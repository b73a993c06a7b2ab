package rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roomgen/grid"
)

// TestElaborate_Corridor: both ends of a fully linked 3×1 corridor are dead
// ends and the middle cell, already holding two doors, is left alone.
func TestElaborate_Corridor(t *testing.T) {
	g := bodyGrid(t, 3, 1)
	g.SetDoor(grid.Point{X: 0, Y: 0}, grid.Right, true)
	g.SetDoor(grid.Point{X: 1, Y: 0}, grid.Right, true)

	chests := elaborate(g, DefaultChance, rngFromSeed(1))
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}, chests)
	assert.Equal(t, 2, totalDoors(g))
}

// TestElaborate_SquareClosesLoop: in a 2×2 tree rooted at (0,0), cell (0,1)
// hangs on a single door and has one more body neighbor, so the loop door
// (0,1)-(1,1) must be opened. Nothing is a dead end.
func TestElaborate_SquareClosesLoop(t *testing.T) {
	g := bodyGrid(t, 2, 2)
	g.SetDoor(grid.Point{X: 0, Y: 0}, grid.Right, true)
	g.SetDoor(grid.Point{X: 0, Y: 0}, grid.Down, true)
	g.SetDoor(grid.Point{X: 1, Y: 0}, grid.Down, true)

	chests := elaborate(g, DefaultChance, rngFromSeed(1))
	assert.Empty(t, chests)
	assert.True(t, g.Door(grid.Point{X: 0, Y: 1}, grid.Right))
	assert.True(t, g.BlockLinked(grid.Point{}))
}

// TestElaborate_IgnoresNonBody: directions only count body neighbors, so an
// Empty neighbor never gets a door.
func TestElaborate_IgnoresNonBody(t *testing.T) {
	g := bodyGrid(t, 3, 1)
	g.SetState(grid.Point{X: 2, Y: 0}, grid.Empty)
	g.SetDoor(grid.Point{X: 0, Y: 0}, grid.Right, true)

	chests := elaborate(g, DefaultChance, rngFromSeed(1))
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, chests)
	assert.False(t, g.Door(grid.Point{X: 1, Y: 0}, grid.Right))
}

// TestElaborateCell_Chance drives the continuation loop to its extremes on
// the center of a 3×3 body grid whose only open door is its trunk.
func TestElaborateCell_Chance(t *testing.T) {
	center := grid.Point{X: 1, Y: 1}
	cases := []struct {
		name   string
		chance float64
		want   int
	}{
		// One forced extra door, the coin never lands.
		{"Rare", 1e-12, 2},
		// The coin always lands until directions run out.
		{"Always", 1 - 1e-12, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				g := bodyGrid(t, 3, 3)
				g.SetDoor(center, grid.Left, true)

				dead := elaborateCell(g, center, tc.chance, rngFromSeed(seed))
				assert.False(t, dead)
				assert.Equal(t, tc.want, openDoors(g, center), "seed %d", seed)
				assert.True(t, g.Door(center, grid.Left), "trunk stays open")
			}
		})
	}
}

// TestElaborateCell_NoDoor leaves an isolated cell untouched: a lone
// epicenter has no trunk to extend.
func TestElaborateCell_NoDoor(t *testing.T) {
	g := bodyGrid(t, 1, 1)
	assert.False(t, elaborateCell(g, grid.Point{}, DefaultChance, rngFromSeed(1)))

	g = bodyGrid(t, 3, 3)
	assert.False(t, elaborateCell(g, grid.Point{X: 1, Y: 1}, DefaultChance, rngFromSeed(1)))
	assert.Zero(t, totalDoors(g))
}
