package curve

import "errors"

// Sentinel errors for codec preconditions. The codec never returns a
// wrong answer silently: every out-of-range input fails fast with one
// of these, wrapped with call context.
var (
	// ErrOrderRange indicates an order outside [0, MaxOrder].
	ErrOrderRange = errors.New("curve: order must be in [0, MaxOrder]")
	// ErrIndexRange indicates a curve index outside [0, 4^order).
	ErrIndexRange = errors.New("curve: index out of range for order")
	// ErrPointRange indicates a coordinate outside [0, 2^order).
	ErrPointRange = errors.New("curve: point coordinate out of range for order")
)
