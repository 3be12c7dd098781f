package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateWeights(t *testing.T) {
	tests := []struct {
		name           string
		listIDs        []int64
		entries        []WeightEntry
		expectedTotals map[int64]float64
		expectedTotal  float64
	}{
		{
			name:    "single list with one item",
			listIDs: []int64{1},
			entries: []WeightEntry{
				{ListID: 1, Weight: 2.5, Quantity: 4},
			},
			expectedTotals: map[int64]float64{1: 10.0},
			expectedTotal:  10.0,
		},
		{
			name:    "multiple lists accumulate independently",
			listIDs: []int64{1, 2},
			entries: []WeightEntry{
				{ListID: 1, Weight: 1.5, Quantity: 2},
				{ListID: 1, Weight: 0.5, Quantity: 1},
				{ListID: 2, Weight: 3.0, Quantity: 3},
			},
			expectedTotals: map[int64]float64{1: 3.5, 2: 9.0},
			expectedTotal:  12.5,
		},
		{
			name:           "list without items gets zero total",
			listIDs:        []int64{7},
			entries:        nil,
			expectedTotals: map[int64]float64{7: 0},
			expectedTotal:  0,
		},
		{
			name:    "entry outside the project is skipped",
			listIDs: []int64{1},
			entries: []WeightEntry{
				{ListID: 1, Weight: 1.0, Quantity: 1},
				{ListID: 99, Weight: 100.0, Quantity: 10},
			},
			expectedTotals: map[int64]float64{1: 1.0},
			expectedTotal:  1.0,
		},
		{
			name:    "zero weight item contributes nothing",
			listIDs: []int64{1},
			entries: []WeightEntry{
				{ListID: 1, Weight: 0, Quantity: 5},
			},
			expectedTotals: map[int64]float64{1: 0},
			expectedTotal:  0,
		},
		{
			name:           "no lists and no entries",
			listIDs:        nil,
			entries:        nil,
			expectedTotals: map[int64]float64{},
			expectedTotal:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, total := AggregateWeights(tt.listIDs, tt.entries)
			assert.Equal(t, tt.expectedTotals, totals)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}
