package gridgraph

// offsets lists orthogonal neighbor deltas: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph is a read-only graph view of one layout. Width and Height are
// the layout dimensions; all internal arrays are private copies.
type GridGraph struct {
	Width, Height int

	walkable []bool   // row-major
	bigOwner []int    // row-major; index of the big cell's top-left, or -1
	hor      [][]bool // [w-1][h]
	ver      [][]bool // [w][h-1]
}
