// Package rooms generates a connected layout of rooms and corridors on a
// rectangular grid.
//
// Generation starts from a single epicenter and grows outward in waves:
//
//  1. Growth. The frontier ("spawners") collects its empty neighbors
//     ("vacancies"). Up to HeadLimit of them are drawn at random as heads;
//     each head opens a door to every adjacent spawner. Spawners become body,
//     heads become the new frontier. Growth stops when no vacancy is left.
//  2. Dead ends. Every body cell with exactly one body neighbor is recorded
//     as a chest location. A cell joined to the layout by a single door gets
//     at least one more door, then further doors while coin flips of
//     probability Chance keep succeeding. This turns the growth tree into a
//     graph with loops.
//  3. Big rooms. Fully linked 2×2 blocks are merged into single big rooms,
//     picked at random until no block is left that would overlap one
//     already placed.
//
// Result:
//
//	Occupied [w][h], BigCells [w-1][h-1], HorDoors [w-1][h], VerDoors [w][h-1]
//	(all indexed [x][y]) and the chest list in x-major scan order. Cells
//	absorbed by a big room are not Occupied; use Result.Walkable to test
//	for any floor.
//
// Options:
//
//   - WithChance:    loop density for dead-end elaboration, 0 < chance < 1 (default 0.35).
//   - WithHeadLimit: maximum new frontier cells per wave, ≥ 0 (default 3).
//   - WithSeed:      seed for the internal generator (0 selects a fixed default).
//   - WithRand:      caller-owned *rand.Rand, overrides the seed.
//   - WithOnWave:    hook called once per growth wave.
//
// Determinism: the same seed (or generator state) and the same arguments
// always yield the same Result.
//
// Complexity: O(W×H) time and memory.
//
// Errors:
//
//   - ErrInvalidArgument: a precondition on w, h, px, py, chance or c failed.
//     The wrapped message names the cause.
package rooms
