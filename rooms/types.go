package rooms

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/roomgen/grid"
)

// ErrInvalidArgument is returned, wrapped with the failing cause, when
// Generate is called with arguments outside their documented ranges.
var ErrInvalidArgument = errors.New("rooms: invalid argument")

// Default parameter values.
const (
	DefaultChance    = 0.35
	DefaultHeadLimit = 3
)

// WaveStats describes one iteration of the growth loop.
type WaveStats struct {
	Wave      int // 1-based iteration number
	Frontier  int // spawners at the start of the wave
	Vacancies int // empty cells adjacent to the frontier
	Heads     int // vacancies promoted to the next frontier
}

// Option configures Generate.
type Option func(*Options)

// Options holds the tunable parameters of a generation run.
type Options struct {
	// Chance is the probability of opening one more door after the first
	// extra door of a weakly connected cell. Must satisfy 0 < Chance < 1.
	Chance float64

	// HeadLimit bounds how many vacancies become heads per wave (the
	// branching fan-out). Must be ≥ 0. Zero halts growth after one wave.
	HeadLimit int

	// Seed seeds the internal generator when Rand is nil. Zero selects
	// defaultRNGSeed.
	Seed int64

	// Rand, if non-nil, is used instead of a generator built from Seed.
	// It is advanced by the run and must not be used concurrently.
	Rand *rand.Rand

	// OnWave, if non-nil, is called after each growth iteration, including
	// the final one that finds no vacancies.
	OnWave func(WaveStats)
}

// DefaultOptions returns Options with Chance=0.35, HeadLimit=3, Seed=0 and
// no hooks.
func DefaultOptions() Options {
	return Options{
		Chance:    DefaultChance,
		HeadLimit: DefaultHeadLimit,
		Seed:      0,
		Rand:      nil,
		OnWave:    nil,
	}
}

// WithChance sets the loop density of dead-end elaboration.
func WithChance(chance float64) Option {
	return func(o *Options) {
		o.Chance = chance
	}
}

// WithHeadLimit sets the maximum number of heads spawned per wave.
func WithHeadLimit(c int) Option {
	return func(o *Options) {
		o.HeadLimit = c
	}
}

// WithSeed seeds the internal generator.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source. A nil r keeps the seeded default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnWave installs fn as the per-wave hook.
func WithOnWave(fn func(WaveStats)) Option {
	return func(o *Options) {
		o.OnWave = fn
	}
}

// Result is an immutable snapshot of a generated layout. All arrays are
// indexed [x][y].
type Result struct {
	Width, Height int
	Epicenter     grid.Point

	// Occupied marks body cells that were not absorbed by a big room.
	Occupied [][]bool // [w][h]
	// BigCells marks the top-left corner of every merged 2×2 room.
	BigCells [][]bool // [w-1][h-1]
	// HorDoors[x][y] is the door between (x,y) and (x+1,y).
	HorDoors [][]bool // [w-1][h]
	// VerDoors[x][y] is the door between (x,y) and (x,y+1).
	VerDoors [][]bool // [w][h-1]

	// Chests lists dead-end cells in x-major, y-minor order.
	Chests []grid.Point

	// Waves is the number of growth iterations, the terminal one included.
	Waves int
	// Seed is the seed used, or 0 when the caller supplied a generator.
	Seed int64
}
