package engine

// SeatsNeeded converts a group's headcount into the seat units it holds
// in a hall. Units come in blocks of a low table: 1-2 people share one
// table (2 units), 3-4 take a double (4 units). Bigger parties must be
// split by staff into groups of at most four.
func SeatsNeeded(headcount int) (int, error) {
	switch {
	case headcount <= 0:
		return 0, ErrInvalidGroupSize
	case headcount <= 2:
		return 2, nil
	case headcount <= 4:
		return 4, nil
	default:
		return 0, ErrGroupTooLarge
	}
}
