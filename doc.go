// Package hilbert is your in-memory toolkit for mapping between linear
// positions on a Hilbert space-filling curve and 2D grid coordinates,
// from the core index↔point codec to full-curve enumeration and
// grid-layout utilities.
//
// 🚀 What is hilbert?
//
//	A small, pure-Go library that brings together:
//		• Codec: exact index↔(x,y) conversion for curves of any order
//		• Enumeration: the full ordered walk of all 4ⁿ curve points
//		• Grid views: the coordinate→index matrix and a generic grid inverter
//		• Compatibility aliases matching the classic hilbertcurve naming
//
// ✨ Why choose hilbert?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – exact integer arithmetic, fail-fast validation
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Deterministic – every operation is a pure function of its inputs
//
// Under the hood, everything is organized under two subpackages:
//
//	curve/ — Point type, IndexToPoint/PointToIndex codec, Points enumeration
//	grid/  — IndexMatrix, generic Invert, fixed order-3 reference layout
//
// Quick ASCII example (order 2, indices laid out on the 4×4 grid):
//
//	 0  1 14 15
//	 3  2 13 12
//	 4  7  8 11
//	 5  6  9 10
//
//	consecutive indices are always edge-adjacent: the curve never jumps.
//
// Dive into examples/ for runnable demos: a console curve walk and a
// text rendering of the grid layout.
//
//	go get github.com/katalvlaran/hilbert
package hilbert
