package grid

import (
	"errors"
	"fmt"
)

// ErrBadDimensions indicates a grid with a non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Point addresses one cell by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Step returns the point one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Less orders points x-major, y-minor (the grid scan order).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction names the four orthogonal offsets from a cell.
type Direction uint8

const (
	// Left points at (x-1, y).
	Left Direction = iota
	// Right points at (x+1, y).
	Right
	// Up points at (x, y-1).
	Up
	// Down points at (x, y+1).
	Down
)

// Directions lists every Direction in enumeration order.
var Directions = [4]Direction{Left, Right, Up, Down}

// Offset returns the coordinate delta of d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	panic(fmt.Sprintf("grid: unknown direction %d", uint8(d)))
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	panic(fmt.Sprintf("grid: unknown direction %d", uint8(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// CellState is the lifecycle stage of a cell during generation. A cell only
// moves forward: Empty → Spawner → Body.
type CellState uint8

const (
	// Empty cells have not been reached by the growth wave.
	Empty CellState = iota
	// Spawner cells form the current growth frontier.
	Spawner
	// Body cells are finalized parts of the layout.
	Body
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Spawner:
		return "spawner"
	case Body:
		return "body"
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Neighbor is one in-bounds orthogonal neighbor and the direction from the
// queried point that reaches it.
type Neighbor struct {
	Point Point
	Dir   Direction
}
