package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDoor_SlotMapping verifies every direction lands in the slot spelled out
// by the door layout: Left→hor[x-1][y], Right→hor[x][y], Up→ver[x][y-1],
// Down→ver[x][y].
func TestDoor_SlotMapping(t *testing.T) {
	cases := []struct {
		dir  Direction
		hor  bool
		x, y int
	}{
		{Left, true, 0, 1},
		{Right, true, 1, 1},
		{Up, false, 1, 0},
		{Down, false, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g, err := New(3, 3)
			require.NoError(t, err)
			p := Point{X: 1, Y: 1}

			g.SetDoor(p, tc.dir, true)
			if tc.hor {
				assert.True(t, g.hor[tc.x][tc.y])
			} else {
				assert.True(t, g.ver[tc.x][tc.y])
			}
			// Shared slot: seen from the neighbor, the same door is open.
			assert.True(t, g.Door(p.Step(tc.dir), tc.dir.Opposite()))

			g.SetDoor(p, tc.dir, false)
			assert.False(t, g.Door(p, tc.dir))
		})
	}
}

func TestDoor_OutOfBoundsPanics(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { g.Door(Point{X: 0, Y: 0}, Left) })
	assert.Panics(t, func() { g.SetDoor(Point{X: 1, Y: 1}, Down, true) })
	assert.Panics(t, func() { g.Door(Point{X: 5, Y: 0}, Right) })
}

func TestBlock_LinkAndClear(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	p := Point{X: 1, Y: 1}
	assert.False(t, g.BlockLinked(p))

	g.SetDoor(p, Right, true)
	g.SetDoor(p, Down, true)
	g.SetDoor(Point{X: 2, Y: 1}, Down, true)
	assert.False(t, g.BlockLinked(p), "three doors are not enough")
	g.SetDoor(Point{X: 1, Y: 2}, Right, true)
	assert.True(t, g.BlockLinked(p))

	// An outer door must survive ClearBlock.
	g.SetDoor(p, Left, true)
	g.ClearBlock(p)
	assert.False(t, g.BlockLinked(p))
	assert.False(t, g.HorDoor(1, 1))
	assert.False(t, g.VerDoor(2, 1))
	assert.True(t, g.Door(p, Left))
}

func TestDoors_AreCopies(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	hor := g.HorDoors()
	hor[0][0] = true
	assert.False(t, g.HorDoor(0, 0))
}
