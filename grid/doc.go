// Package grid materializes Hilbert curve layouts as 2D grids and
// provides a generic inverter for looking positions up by value.
//
// What:
//
//   - IndexMatrix builds the full coordinate→index matrix for an order.
//   - Invert turns any rectangular 2D slice into a value→Point mapping.
//   - Reference3 is a fixed, precomputed order-3 index layout with
//     PositionAt3 lookup, kept as an independent cross-check fixture.
//
// Axis convention (fixed package-wide):
//
//	Row r is the y coordinate, column c is the x coordinate, so
//	IndexMatrix(order)[y][x] holds the curve index of the point (x, y)
//	and Invert maps the value at rows[r][c] to Point{X: c, Y: r}.
//	Reference3 is stored in the same [y][x] layout.
//
// Why:
//
//   - Layout inspection: see where every index lands on the grid at once.
//   - Reverse lookup on precomputed grids without re-running the codec.
//   - Cross-validation: Reference3 is data, not computation, so it checks
//     the codec from outside.
//
// Complexity:
//
//   - IndexMatrix: O(order·4ᵒʳᵈᵉʳ) time, O(4ᵒʳᵈᵉʳ) memory.
//   - Invert: O(R×C) time and memory for an R×C input.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrRagged: input rows have differing lengths.
//   - ErrReferenceRange: reference lookup outside the 8×8 layout.
//
// Order validation is delegated to package curve (ErrOrderRange).
package grid
