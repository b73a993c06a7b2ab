package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/roomgen/rooms"
)

// NewGridGraph constructs a GridGraph from layout arrays indexed [x][y]:
// occupied [w][h], big [w-1][h-1], hor [w-1][h], ver [w][h-1].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrShapeMismatch.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(occupied, big, hor, ver [][]bool) (*GridGraph, error) {
	if len(occupied) == 0 || len(occupied[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(occupied), len(occupied[0])
	for _, col := range occupied {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	if err := checkShape("big cells", big, w-1, h-1); err != nil {
		return nil, err
	}
	if err := checkShape("horizontal doors", hor, w-1, h); err != nil {
		return nil, err
	}
	if err := checkShape("vertical doors", ver, w, h-1); err != nil {
		return nil, err
	}

	gg := &GridGraph{
		Width:    w,
		Height:   h,
		walkable: make([]bool, w*h),
		bigOwner: make([]int, w*h),
		hor:      cloneArray(hor),
		ver:      cloneArray(ver),
	}
	for i := range gg.bigOwner {
		gg.bigOwner[i] = -1
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			gg.walkable[gg.index(x, y)] = occupied[x][y]
		}
	}
	for x := range big {
		for y, b := range big[x] {
			if !b {
				continue
			}
			owner := gg.index(x, y)
			for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				i := gg.index(x+d[0], y+d[1])
				gg.walkable[i] = true
				gg.bigOwner[i] = owner
			}
		}
	}
	return gg, nil
}

// FromResult builds a GridGraph over a generated layout.
func FromResult(res *rooms.Result) (*GridGraph, error) {
	if res == nil {
		return nil, ErrNilLayout
	}
	return NewGridGraph(res.Occupied, res.BigCells, res.HorDoors, res.VerDoors)
}

func checkShape(name string, a [][]bool, cols, rows int) error {
	if len(a) != cols {
		return fmt.Errorf("%w: %s have %d columns, want %d", ErrShapeMismatch, name, len(a), cols)
	}
	for _, col := range a {
		if len(col) != rows {
			return fmt.Errorf("%w: %s have a column of %d rows, want %d", ErrShapeMismatch, name, len(col), rows)
		}
	}
	return nil
}

func cloneArray(a [][]bool) [][]bool {
	out := make([][]bool, len(a))
	for x := range a {
		out[x] = append([]bool(nil), a[x]...)
	}
	return out
}

// InBounds reports whether (x,y) lies within the layout.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is floor: occupied or part of a big room.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.walkable[gg.index(x, y)]
}

// door reports whether the door from (x,y) toward (x+dx, y+dy) is open.
// The target must be in bounds.
func (gg *GridGraph) door(x, y, dx, dy int) bool {
	switch {
	case dx == 1:
		return gg.hor[x][y]
	case dx == -1:
		return gg.hor[x-1][y]
	case dy == 1:
		return gg.ver[x][y]
	default:
		return gg.ver[x][y-1]
	}
}

// Degree returns the number of open doors around (x,y).
// Complexity: O(1).
func (gg *GridGraph) Degree(x, y int) int {
	n := 0
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) && gg.door(x, y, d[0], d[1]) {
			n++
		}
	}
	return n
}

// WalkableNeighbors returns the number of walkable orthogonal neighbors of
// (x,y), ignoring doors.
func (gg *GridGraph) WalkableNeighbors(x, y int) int {
	n := 0
	for _, d := range offsets {
		if gg.Walkable(x+d[0], y+d[1]) {
			n++
		}
	}
	return n
}

// DanglingDoors counts open doors with at least one non-walkable side.
// A well-formed layout has none.
// Complexity: O(W×H).
func (gg *GridGraph) DanglingDoors() int {
	n := 0
	for x := range gg.hor {
		for y, open := range gg.hor[x] {
			if open && !(gg.Walkable(x, y) && gg.Walkable(x+1, y)) {
				n++
			}
		}
	}
	for x := range gg.ver {
		for y, open := range gg.ver[x] {
			if open && !(gg.Walkable(x, y) && gg.Walkable(x, y+1)) {
				n++
			}
		}
	}
	return n
}

// WalkableCount returns the number of walkable cells.
func (gg *GridGraph) WalkableCount() int {
	n := 0
	for _, ok := range gg.walkable {
		if ok {
			n++
		}
	}
	return n
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
