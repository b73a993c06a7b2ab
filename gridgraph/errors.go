package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the occupied array has no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: layout must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all columns must have the same length")
	// ErrShapeMismatch indicates a door or big-cell array of the wrong shape.
	ErrShapeMismatch = errors.New("gridgraph: array shape does not match the layout")
	// ErrNilLayout indicates a nil *rooms.Result.
	ErrNilLayout = errors.New("gridgraph: layout is nil")
)
