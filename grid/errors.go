package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrReferenceRange indicates a lookup outside the 8×8 reference layout.
	ErrReferenceRange = errors.New("grid: reference coordinate out of range")
)
