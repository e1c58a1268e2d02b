package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.InDelta(t, 1.0, Ratio("Apple", "Apple"), 1e-9)
	assert.InDelta(t, 0.0, Ratio("xyz", "Apple"), 1e-9)
	// 5 matching runes over 10+5 total.
	assert.InDelta(t, 2.0*5/15, Ratio("Apple Inc.", "Apple"), 1e-9)
}

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		candidates []string
		wantIndex  int
		wantOK     bool
	}{
		{
			name:       "long form name clears cutoff",
			word:       "Apple",
			candidates: []string{"Apple Inc.", "Apple Hospitality REIT"},
			wantIndex:  0,
			wantOK:     true,
		},
		{
			name:       "best score wins regardless of position",
			word:       "Apple Hospitality",
			candidates: []string{"Apple Inc.", "Apple Hospitality REIT"},
			wantIndex:  1,
			wantOK:     true,
		},
		{
			name:       "nothing over cutoff",
			word:       "Berkshire",
			candidates: []string{"Apple Inc.", "Alphabet Inc."},
			wantIndex:  -1,
			wantOK:     false,
		},
		{
			name:       "ties go to the first listed candidate",
			word:       "Tesla",
			candidates: []string{"Tesla", "Tesla"},
			wantIndex:  0,
			wantOK:     true,
		},
		{
			name:       "no candidates",
			word:       "Tesla",
			candidates: nil,
			wantIndex:  -1,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := ClosestMatch(tt.word, tt.candidates, 0.6, nil)
			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantOK, ok)

			// The explicit scorer must agree with the optimised default path.
			idx, ok = ClosestMatch(tt.word, tt.candidates, 0.6, Ratio)
			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClosestMatchDeterministic(t *testing.T) {
	candidates := []string{"Apple Inc.", "Apple Hospitality REIT"}
	first, _ := ClosestMatch("Apple", candidates, 0.6, nil)
	for i := 0; i < 10; i++ {
		idx, _ := ClosestMatch("Apple", candidates, 0.6, nil)
		assert.Equal(t, first, idx)
	}
}

func TestClosestMatchCustomScorer(t *testing.T) {
	constant := func(candidate, word string) float64 { return 0.7 }
	idx, ok := ClosestMatch("anything", []string{"a", "b", "c"}, 0.6, constant)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
