package gacha

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gachabox/internal/domain"
)

func fixed(v float64) func() float64 { return func() float64 { return v } }

func TestSelectItem(t *testing.T) {
	ab := []domain.Item{{ID: "A", Weight: 90}, {ID: "B", Weight: 10}}

	tests := []struct {
		name  string
		items []domain.Item
		r     float64
		want  string
	}{
		{"r=50 of 100 picks A", ab, 0.5, "A"},
		{"zero picks first", ab, 0, "A"},
		{"just past A picks B", ab, 0.91, "B"},
		{"near one picks last", ab, 0.999999, "B"},
		{"boundary is inclusive", []domain.Item{{ID: "A", Weight: 1}, {ID: "B", Weight: 1}}, 0.5, "A"},
		{"single item", []domain.Item{{ID: "only", Weight: 0.001}}, 0.7, "only"},
		{"zero weight skipped", []domain.Item{{ID: "zero", Weight: 0}, {ID: "B", Weight: 5}}, 0, "B"},
		{"trailing zero weight not chosen", []domain.Item{{ID: "A", Weight: 5}, {ID: "zero", Weight: 0}}, 0.9999999999, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectItem(tt.items, fixed(tt.r))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestSelectItem_FloatOverrunFallsBackToLast(t *testing.T) {
	items := []domain.Item{{ID: "A", Weight: 0.1}, {ID: "B", Weight: 0.2}}
	// rnd outside its contract pushes r beyond the sum
	got, err := SelectItem(items, fixed(1.0000001))
	require.NoError(t, err)
	assert.Equal(t, "B", got.ID)
}

func TestSelectItem_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Item
	}{
		{"empty", nil},
		{"all zero", []domain.Item{{ID: "A"}, {ID: "B"}}},
		{"negative", []domain.Item{{ID: "A", Weight: 5}, {ID: "B", Weight: -1}}},
		{"nan", []domain.Item{{ID: "A", Weight: math.NaN()}}},
		{"inf", []domain.Item{{ID: "A", Weight: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectItem(tt.items, fixed(0.5))
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestSelectItem_ReturnsCopy(t *testing.T) {
	items := []domain.Item{{ID: "A", Name: "orig", Weight: 1}}
	got, err := SelectItem(items, fixed(0.3))
	require.NoError(t, err)
	got.Name = "changed"
	assert.Equal(t, "orig", items[0].Name)
}

// TestSelectItem_WeightedFairness runs a chi-square goodness of fit test
func TestSelectItem_WeightedFairness(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Weight: 50},
		{ID: "b", Weight: 30},
		{ID: "c", Weight: 15},
		{ID: "d", Weight: 4.5},
		{ID: "e", Weight: 0.5},
	}
	const draws = 200_000

	rng := rand.New(rand.NewPCG(42, 7)) //nolint:gosec // deterministic test stream
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		it, err := SelectItem(items, rng.Float64)
		require.NoError(t, err)
		counts[it.ID]++
	}

	total := 100.0
	chi2 := 0.0
	for _, it := range items {
		expected := draws * it.Weight / total
		diff := float64(counts[it.ID]) - expected
		chi2 += diff * diff / expected
	}

	// 4 degrees of freedom, p = 0.001
	assert.Less(t, chi2, 18.47, "counts %v", counts)
}
