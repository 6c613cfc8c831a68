package curve

// Points returns the full ordered walk of the order-n curve: a fresh
// slice of exactly 4ᵒʳᵈᵉʳ points where element i equals
// IndexToPoint(order, i). The result is deterministic and restartable;
// successive calls share no state.
// Complexity: O(order·4ᵒʳᵈᵉʳ) time, O(4ᵒʳᵈᵉʳ) memory.
func Points(order int) ([]Point, error) {
	cells, err := CellCount(order)
	if err != nil {
		return nil, err
	}
	walk := make([]Point, cells)
	for i := 0; i < cells; i++ {
		// Index i is in range by construction, so no error can occur.
		walk[i], _ = IndexToPoint(order, i)
	}
	return walk, nil
}
