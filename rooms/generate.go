package rooms

import (
	"fmt"

	"github.com/katalvlaran/roomgen/grid"
)

// Generate builds a w×h layout grown from the epicenter (px, py).
//
// Behavior:
//  1. Validate arguments; nothing is allocated on failure.
//  2. Grow waves from the epicenter until no vacancy remains.
//  3. Record dead ends and add loop doors.
//  4. Merge disjoint fully linked 2×2 blocks into big rooms.
//  5. Assemble the Result.
//
// Returns an error wrapping ErrInvalidArgument when w or h is not positive,
// (px, py) is outside the grid, chance is not strictly between 0 and 1, or
// the head limit is negative. Once arguments are valid, Generate cannot fail.
//
// Complexity: O(W×H) time and memory.
func Generate(w, h, px, py int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(w, h, px, py, o); err != nil {
		return nil, err
	}

	rng := o.Rand
	seed := int64(0)
	if rng == nil {
		seed = effectiveSeed(o.Seed)
		rng = rngFromSeed(seed)
	}

	g, err := grid.New(w, h)
	if err != nil {
		// Unreachable after validate.
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	epicenter := grid.Point{X: px, Y: py}

	waves := grow(g, epicenter, o.HeadLimit, rng, o.OnWave)
	chests := elaborate(g, o.Chance, rng)
	big := merge(g, rng)

	res := assemble(g, big, chests)
	res.Epicenter = epicenter
	res.Waves = waves
	res.Seed = seed
	return res, nil
}

// validate checks the preconditions of Generate in a fixed order and returns
// the first violation.
func validate(w, h, px, py int, o Options) error {
	switch {
	case w <= 0:
		return invalid("w must be positive")
	case h <= 0:
		return invalid("h must be positive")
	case px < 0 || px >= w:
		return invalid("px out of range")
	case py < 0 || py >= h:
		return invalid("py out of range")
	case !(o.Chance > 0 && o.Chance < 1):
		// Also rejects NaN.
		return invalid("chance out of range")
	case o.HeadLimit < 0:
		return invalid("c negative")
	}
	return nil
}

func invalid(cause string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, cause)
}
