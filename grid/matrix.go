package grid

import "github.com/katalvlaran/hilbert/curve"

// IndexMatrix builds the full coordinate→index matrix of the order-n
// curve: a fresh 2ᵒʳᵈᵉʳ×2ᵒʳᵈᵉʳ slice where m[y][x] is the curve index of
// the point (x, y). Enumerated in any fixed scan order, the values form a
// permutation of {0 … 4ᵒʳᵈᵉʳ−1}; the matrix is the dual of curve.Points.
// Returns curve.ErrOrderRange for an order outside [0, MaxOrder].
// Complexity: O(order·4ᵒʳᵈᵉʳ) time, O(4ᵒʳᵈᵉʳ) memory.
func IndexMatrix(order int) ([][]int, error) {
	side, err := curve.SideLength(order)
	if err != nil {
		return nil, err
	}
	m := make([][]int, side)
	for y := 0; y < side; y++ {
		row := make([]int, side)
		for x := 0; x < side; x++ {
			// Both coordinates are in range by construction.
			row[x], _ = curve.PointToIndex(x, y, order)
		}
		m[y] = row
	}
	return m, nil
}
