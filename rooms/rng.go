// Package rooms - RNG utilities shared by the generation phases.
//
// Every random decision of a run goes through one *rand.Rand, so the draw
// sequence (and therefore the layout) is fully determined by the seed.
// math/rand.Rand is NOT goroutine-safe; a caller passing WithRand owns the
// synchronization.
package rooms

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/roomgen/grid"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// rngFromSeed returns a deterministic *rand.Rand.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// sortPoints orders pts in scan order (x-major, y-minor) in place, making
// draws over a set independent of map iteration order.
func sortPoints(pts []grid.Point) {
	slices.SortFunc(pts, func(a, b grid.Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
}

// sampleWithoutReplacement returns k distinct elements of pts drawn
// uniformly at random, in draw order. pts is permuted in place.
// k must satisfy 0 ≤ k ≤ len(pts).
//
// Complexity: O(k) time, no allocation.
func sampleWithoutReplacement(pts []grid.Point, k int, rng *rand.Rand) []grid.Point {
	n := len(pts)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts[:k]
}

// pickDirection removes and returns a uniformly chosen element of dirs.
// dirs must be non-empty.
func pickDirection(dirs []grid.Direction, rng *rand.Rand) (grid.Direction, []grid.Direction) {
	i := rng.Intn(len(dirs))
	d := dirs[i]
	return d, slices.Delete(dirs, i, i+1)
}
