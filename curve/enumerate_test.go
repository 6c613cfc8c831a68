package curve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hilbert/curve"
)

//----------------------------------------------------------------------------//
// Enumeration Tests
//----------------------------------------------------------------------------//

// TestPoints_Order1 pins the concrete order-1 walk.
func TestPoints_Order1(t *testing.T) {
	got, err := curve.Points(1)
	require.NoError(t, err)
	want := []curve.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Points(1) mismatch (-want +got):\n%s", diff)
	}
}

// TestPoints_Bijection verifies that the walk covers the full grid with
// no repeats for every order in [0,6].
func TestPoints_Bijection(t *testing.T) {
	for order := 0; order <= 6; order++ {
		walk, err := curve.Points(order)
		require.NoError(t, err)
		side, _ := curve.SideLength(order)
		require.Len(t, walk, side*side, "order %d", order)

		seen := make(map[curve.Point]bool, len(walk))
		for i, p := range walk {
			require.False(t, seen[p], "order %d: point %v repeated at index %d", order, p, i)
			require.GreaterOrEqual(t, p.X, 0)
			require.GreaterOrEqual(t, p.Y, 0)
			require.Less(t, p.X, side, "order %d index %d", order, i)
			require.Less(t, p.Y, side, "order %d index %d", order, i)
			seen[p] = true
		}
		// 4^order distinct in-range points is exactly the full grid.
		require.Len(t, seen, side*side, "order %d", order)
	}
}

// TestPoints_Adjacency verifies the space-filling locality property:
// consecutive indices sit at Chebyshev distance exactly 1.
func TestPoints_Adjacency(t *testing.T) {
	for order := 1; order <= 6; order++ {
		walk, err := curve.Points(order)
		require.NoError(t, err)
		for i := 1; i < len(walk); i++ {
			d := chebyshev(walk[i-1], walk[i])
			require.Equal(t, 1, d, "order %d: step %d→%d jumps from %v to %v",
				order, i-1, i, walk[i-1], walk[i])
		}
	}
}

// TestPoints_MatchesCodec verifies that element i of the walk equals the
// direct conversion of index i.
func TestPoints_MatchesCodec(t *testing.T) {
	walk, err := curve.Points(4)
	require.NoError(t, err)
	for i, p := range walk {
		direct, err := curve.IndexToPoint(4, i)
		require.NoError(t, err)
		require.Equal(t, direct, p, "index %d", i)
	}
}

// TestPoints_Restartable verifies that repeated enumeration is
// deterministic and shares no state.
func TestPoints_Restartable(t *testing.T) {
	first, err := curve.Points(3)
	require.NoError(t, err)
	second, err := curve.Points(3)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Points(3) not deterministic (-first +second):\n%s", diff)
	}
	// Distinct backing storage: mutating one walk must not leak into the other.
	first[0] = curve.Point{X: -1, Y: -1}
	require.Equal(t, curve.Point{X: 0, Y: 0}, second[0])
}

// TestPoints_OrderRange verifies fail-fast rejection of invalid orders.
func TestPoints_OrderRange(t *testing.T) {
	_, err := curve.Points(-1)
	require.ErrorIs(t, err, curve.ErrOrderRange)
	_, err = curve.Points(curve.MaxOrder + 1)
	require.ErrorIs(t, err, curve.ErrOrderRange)
}

// chebyshev returns the Chebyshev distance between two points.
func chebyshev(a, b curve.Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
