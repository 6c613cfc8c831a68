// Package curve defines the core types and sentinel errors for the
// Hilbert codec subpackage of github.com/katalvlaran/hilbert.
package curve

// MaxOrder is the largest supported curve order. An order-n curve has
// 4ⁿ cells, so n = 31 is the largest order whose index range still fits
// a 64-bit int with headroom for the per-step s·s products.
const MaxOrder = 31

// Point is a coordinate on the 2ᵒʳᵈᵉʳ×2ᵒʳᵈᵉʳ grid covered by the curve.
// Both components lie in [0, 2ᵒʳᵈᵉʳ). Points are immutable values.
type Point struct {
	X, Y int
}

// SideLength returns the grid side 2ᵒʳᵈᵉʳ for a valid order.
// Complexity: O(1).
func SideLength(order int) (int, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	return 1 << order, nil
}

// CellCount returns the total number of curve cells 4ᵒʳᵈᵉʳ for a valid order.
// Complexity: O(1).
func CellCount(order int) (int, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	return 1 << (2 * order), nil
}
