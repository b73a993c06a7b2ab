package gridgraph

// ConnectedComponents finds all groups of walkable cells joined by open
// doors. The four cells of a big room count as joined to each other.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if !gg.walkable[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range gg.linked(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// linked returns the walkable cells reachable from u in one step: through
// an open door, or inside the same big room.
func (gg *GridGraph) linked(u int) []int {
	out := make([]int, 0, 6)
	ux, uy := gg.Coordinate(u)
	for _, d := range offsets {
		vx, vy := ux+d[0], uy+d[1]
		if !gg.InBounds(vx, vy) || !gg.door(ux, uy, d[0], d[1]) {
			continue
		}
		if v := gg.index(vx, vy); gg.walkable[v] {
			out = append(out, v)
		}
	}
	if owner := gg.bigOwner[u]; owner >= 0 {
		ox, oy := gg.Coordinate(owner)
		for _, d := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			if v := gg.index(ox+d[0], oy+d[1]); v != u {
				out = append(out, v)
			}
		}
	}
	return out
}
