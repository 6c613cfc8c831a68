package grid

import "fmt"

// Reference3 is the fixed order-3 Hilbert layout: Reference3[y][x] is the
// curve index of the point (x, y) on the 8×8 grid. It is precomputed
// data, never derived from the codec at runtime, which makes it an
// independent fixture for cross-checking IndexMatrix and the codec.
var Reference3 = [8][8]int{
	{0, 3, 4, 5, 58, 59, 60, 63},     //  v┌─┐┌─┐^
	{1, 2, 7, 6, 57, 56, 61, 62},     //  └┘┌┘└┐└┘
	{14, 13, 8, 9, 54, 55, 50, 49},   //  ┌┐└┐┌┘┌┐
	{15, 12, 11, 10, 53, 52, 51, 48}, //  │└─┘└─┘│
	{16, 17, 30, 31, 32, 33, 46, 47}, //  └┐┌──┐┌┘
	{19, 18, 29, 28, 35, 34, 45, 44}, //  ┌┘└┐┌┘└┐
	{20, 23, 24, 27, 36, 39, 40, 43}, //  │┌┐││┌┐│
	{21, 22, 25, 26, 37, 38, 41, 42}, //  └┘└┘└┘└┘
}

// PositionAt3 returns the order-3 curve index at (x, y) straight from the
// Reference3 layout. Returns ErrReferenceRange when (x, y) falls outside
// the 8×8 grid.
// Complexity: O(1).
func PositionAt3(x, y int) (int, error) {
	if x < 0 || x >= 8 || y < 0 || y >= 8 {
		return 0, fmt.Errorf("grid: reference position (%d,%d): %w", x, y, ErrReferenceRange)
	}
	return Reference3[y][x], nil
}
