package services

// WeightEntry is the slice of an item row that matters for weight totals.
type WeightEntry struct {
	ListID   int64
	Weight   float64
	Quantity int64
}

// AggregateWeights computes per-list weight totals and the overall total for
// a project. Every list id appears in the result map; lists without items
// carry 0.0, so callers never deal with missing keys. Totals are float64,
// matching the DOUBLE PRECISION weight column.
func AggregateWeights(listIDs []int64, entries []WeightEntry) (map[int64]float64, float64) {
	listTotals := make(map[int64]float64, len(listIDs))
	for _, id := range listIDs {
		listTotals[id] = 0
	}

	var totalWeight float64
	for _, e := range entries {
		if _, ok := listTotals[e.ListID]; !ok {
			// Entry points at a list outside the project; skip rather
			// than invent a list key.
			continue
		}
		contribution := e.Weight * float64(e.Quantity)
		listTotals[e.ListID] += contribution
		totalWeight += contribution
	}

	return listTotals, totalWeight
}
