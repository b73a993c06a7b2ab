package grid

import "fmt"

// doorSlot resolves the door shared by p and its neighbor in direction d.
// Panics when either cell lies outside the grid: callers only pass directions
// produced by Neighbors for the same point.
func (g *Grid) doorSlot(p Point, d Direction) *bool {
	if !g.InBounds(p) || !g.InBounds(p.Step(d)) {
		panic(fmt.Sprintf("grid: no door %s of %s in %dx%d grid", d, p, g.width, g.height))
	}
	switch d {
	case Left:
		return &g.hor[p.X-1][p.Y]
	case Right:
		return &g.hor[p.X][p.Y]
	case Up:
		return &g.ver[p.X][p.Y-1]
	case Down:
		return &g.ver[p.X][p.Y]
	}
	panic(fmt.Sprintf("grid: unknown direction %d", uint8(d)))
}

// Door reports whether the door between p and its neighbor in direction d
// is open.
// Complexity: O(1).
func (g *Grid) Door(p Point, d Direction) bool {
	return *g.doorSlot(p, d)
}

// SetDoor opens or closes the door between p and its neighbor in direction d.
// Complexity: O(1).
func (g *Grid) SetDoor(p Point, d Direction, open bool) {
	*g.doorSlot(p, d) = open
}

// HorDoor reads the horizontal door slot joining (x,y) and (x+1,y).
func (g *Grid) HorDoor(x, y int) bool { return g.hor[x][y] }

// VerDoor reads the vertical door slot joining (x,y) and (x,y+1).
func (g *Grid) VerDoor(x, y int) bool { return g.ver[x][y] }

// BlockLinked reports whether all four doors inside the 2×2 block whose
// top-left cell is p are open. p.X+1 and p.Y+1 must be in bounds.
func (g *Grid) BlockLinked(p Point) bool {
	x, y := p.X, p.Y
	return g.hor[x][y] && g.ver[x][y] && g.hor[x][y+1] && g.ver[x+1][y]
}

// ClearBlock closes the four doors inside the 2×2 block whose top-left cell
// is p. Doors on the block's outer boundary are left untouched.
func (g *Grid) ClearBlock(p Point) {
	x, y := p.X, p.Y
	g.hor[x][y] = false
	g.hor[x][y+1] = false
	g.ver[x][y] = false
	g.ver[x+1][y] = false
}

// HorDoors returns a copy of the horizontal door array, shape [w-1][h].
func (g *Grid) HorDoors() [][]bool {
	return cloneBoolArray(g.hor, g.height)
}

// VerDoors returns a copy of the vertical door array, shape [w][h-1].
func (g *Grid) VerDoors() [][]bool {
	return cloneBoolArray(g.ver, g.height-1)
}

func cloneBoolArray(src [][]bool, rows int) [][]bool {
	out := newBoolArray(len(src), rows)
	for x := range src {
		copy(out[x], src[x])
	}
	return out
}
