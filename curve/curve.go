// Package curve: bidirectional Hilbert codec.
//
// Both directions share the single rotate/reflect rule below; applying it
// with the same bit sources in mirrored scale order is what makes
// IndexToPoint and PointToIndex exact inverses of each other.
package curve

import "fmt"

// validateOrder checks 0 ≤ order ≤ MaxOrder.
func validateOrder(order int) error {
	if order < 0 || order > MaxOrder {
		return fmt.Errorf("curve: order %d: %w", order, ErrOrderRange)
	}
	return nil
}

// IndexToPoint converts a curve index to its grid coordinate for the
// given order.
// Stage 1 (Validate): order in [0, MaxOrder], index in [0, 4^order).
// Stage 2 (Execute): walk scales s = 1, 2, …, 2^(order-1), consuming two
// quadrant bits of the index per step, from least significant pair up.
// Complexity: O(order) time, O(1) memory.
func IndexToPoint(order, index int) (Point, error) {
	if err := validateOrder(order); err != nil {
		return Point{}, err
	}
	side := 1 << order
	if index < 0 || index >= side*side {
		return Point{}, fmt.Errorf("curve: index %d at order %d: %w", index, order, ErrIndexRange)
	}

	var x, y int
	t := index
	for s := 1; s < side; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	// Order 0: the loop never runs and the single cell maps to (0,0).
	return Point{X: x, Y: y}, nil
}

// PointToIndex converts a grid coordinate to its curve index for the
// given order. Exact inverse of IndexToPoint.
// Stage 1 (Validate): order in [0, MaxOrder], x and y in [0, 2^order).
// Stage 2 (Execute): walk scales s = 2^(order-1), …, 2, 1, reading one
// coordinate bit per axis per step, from most significant pair down.
// Complexity: O(order) time, O(1) memory.
func PointToIndex(x, y, order int) (int, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	side := 1 << order
	if x < 0 || x >= side || y < 0 || y >= side {
		return 0, fmt.Errorf("curve: point (%d,%d) at order %d: %w", x, y, order, ErrPointRange)
	}

	var index int
	for s := side / 2; s > 0; s /= 2 {
		var rx, ry int
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		index += s * s * ((3 * rx) ^ ry)
		x, y = rotate(s, x, y, rx, ry)
	}
	return index, nil
}

// rotate reorients (x, y) within the s×s quadrant selected by the bits
// rx, ry so that sub-curves connect continuously across recursion levels.
// ry == 1 leaves the quadrant untouched; ry == 0 swaps the axes, after
// reflecting both coordinates about the quadrant center when rx == 1.
func rotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
