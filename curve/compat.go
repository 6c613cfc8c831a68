package curve

// Compatibility aliases mirroring the calling convention of the classic
// hilbertcurve package, so this codec can substitute for it without
// touching call sites. Behavior and return shape match the primary
// functions exactly.

// PointFromDistance is a hilbertcurve-compatible alias for IndexToPoint.
func PointFromDistance(order, distance int) (Point, error) {
	return IndexToPoint(order, distance)
}

// DistanceFromPoint is a hilbertcurve-compatible alias for PointToIndex.
// Note the (order, x, y) argument order of the original convention.
func DistanceFromPoint(order, x, y int) (int, error) {
	return PointToIndex(x, y, order)
}
