package rooms

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roomgen/grid"
)

// grow runs the wave growth loop from epicenter until no vacancy is left and
// returns the number of iterations performed.
//
// Each iteration:
//  1. Collect the Empty neighbors of every spawner into the vacancy set.
//  2. No vacancies: spawners become Body, stop.
//  3. Choose heads: all vacancies, or limit of them drawn without
//     replacement when there are more than limit.
//  4. Open a door from every head to each adjacent spawner.
//  5. Spawners become Body, heads become Spawner.
//
// With limit==0 the first wave draws no heads and the frontier empties, so
// growth halts after converting the epicenter even if vacancies remain.
//
// Complexity: O(W×H) cell visits; at most W×H iterations when limit ≥ 1.
func grow(g *grid.Grid, epicenter grid.Point, limit int, rng *rand.Rand, onWave func(WaveStats)) int {
	isEmpty := g.StateIs(grid.Empty)
	isSpawner := g.StateIs(grid.Spawner)

	frontier := []grid.Point{epicenter}
	g.SetState(epicenter, grid.Spawner)

	for wave := 1; ; wave++ {
		vacancies := mapset.New[grid.Point]()
		for _, s := range frontier {
			for _, n := range g.Neighbors(s, isEmpty) {
				vacancies.Put(n.Point)
			}
		}

		stats := WaveStats{Wave: wave, Frontier: len(frontier), Vacancies: vacancies.Size()}
		if vacancies.Size() == 0 {
			for _, s := range frontier {
				g.SetState(s, grid.Body)
			}
			if onWave != nil {
				onWave(stats)
			}
			return wave
		}

		heads := chooseHeads(vacancies, limit, rng)
		for _, h := range heads {
			for _, n := range g.Neighbors(h, isSpawner) {
				g.SetDoor(h, n.Dir, true)
			}
		}

		for _, s := range frontier {
			g.SetState(s, grid.Body)
		}
		for _, h := range heads {
			g.SetState(h, grid.Spawner)
		}
		frontier = heads

		stats.Heads = len(heads)
		if onWave != nil {
			onWave(stats)
		}
	}
}

// chooseHeads picks the next frontier out of the vacancy set. Vacancies are
// sorted first so the draw depends only on the generator state.
func chooseHeads(vacancies mapset.Set[grid.Point], limit int, rng *rand.Rand) []grid.Point {
	pts := make([]grid.Point, 0, vacancies.Size())
	vacancies.Each(func(p grid.Point) {
		pts = append(pts, p)
	})
	sortPoints(pts)
	if len(pts) > limit {
		return sampleWithoutReplacement(pts, limit, rng)
	}
	return pts
}
