package grid

import (
	"fmt"

	"github.com/katalvlaran/hilbert/curve"
)

// Invert maps every distinct value of a rectangular 2D slice to the grid
// position holding it, under the package axis convention: the value at
// rows[r][c] maps to Point{X: c, Y: r}. The scan is row-major and
// deterministic; duplicate values silently overwrite, so the last
// occurrence in scan order wins. Invert never runs the codec: it works
// on exactly the data it is given, Hilbert layout or not.
// Returns ErrEmptyGrid if rows has no rows or no columns, ErrRagged if
// any row length differs.
// Complexity: O(R×C) time and memory.
func Invert[V comparable](rows [][]V) (map[V]curve.Point, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid: row %d has %d columns, want %d: %w", r, len(row), width, ErrRagged)
		}
	}

	positions := make(map[V]curve.Point, len(rows)*width)
	for r, row := range rows {
		for c, v := range row {
			positions[v] = curve.Point{X: c, Y: r}
		}
	}
	return positions, nil
}
