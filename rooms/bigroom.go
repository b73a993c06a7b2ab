package rooms

import (
	"math/rand"

	"github.com/katalvlaran/roomgen/grid"
)

// merge turns a random maximal set of disjoint, fully linked 2×2 blocks into
// big rooms and returns the big-cell mask, shape [w-1][h-1].
//
// Candidates are collected once in x-major order. Each pick marks the mask,
// absorbs the four member cells (state Empty), closes the four internal
// doors and discards every candidate within Chebyshev distance 1 of the
// picked corner, since those blocks share at least one cell with it.
//
// Complexity: O(W×H) to collect, O(K²) for K candidates to resolve.
func merge(g *grid.Grid, rng *rand.Rand) [][]bool {
	w, h := g.Width(), g.Height()
	big := make([][]bool, max(w-1, 0))
	for x := range big {
		big[x] = make([]bool, max(h-1, 0))
	}

	var candidates []grid.Point
	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			p := grid.Point{X: x, Y: y}
			if g.BlockLinked(p) {
				candidates = append(candidates, p)
			}
		}
	}

	for len(candidates) > 0 {
		pick := candidates[rng.Intn(len(candidates))]
		placeBigCell(g, pick)
		big[pick.X][pick.Y] = true

		kept := candidates[:0]
		for _, c := range candidates {
			if chebyshev(c, pick) > 1 {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}
	return big
}

// placeBigCell absorbs the 2×2 block at p into one big room.
func placeBigCell(g *grid.Grid, p grid.Point) {
	for _, q := range [4]grid.Point{
		p,
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X + 1, Y: p.Y + 1},
	} {
		g.SetState(q, grid.Empty)
	}
	g.ClearBlock(p)
}

// chebyshev returns max(|ax-bx|, |ay-by|).
func chebyshev(a, b grid.Point) int {
	return max(absInt(a.X-b.X), absInt(a.Y-b.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
