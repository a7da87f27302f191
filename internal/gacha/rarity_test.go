package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/utils"
)

func TestRarityBand(t *testing.T) {
	tests := []struct {
		tier domain.RarityTier
		want Band
	}{
		{domain.RarityCommon, Band{1, 200}},
		{domain.RarityUncommon, Band{201, 400}},
		{domain.RarityRare, Band{401, 600}},
		{domain.RarityEpic, Band{601, 800}},
		{domain.RarityLegendary, Band{801, 1000}},
		{domain.RarityQuantum, Band{1, 1000}},
		{domain.RarityTier("mythic"), Band{1, 1000}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.want, RarityBand(tt.tier))
		})
	}
}

func TestRarityBands_PartitionScale(t *testing.T) {
	next := domain.MinRarityScore
	for _, tier := range domain.StandardRarities {
		b := RarityBand(tier)
		assert.Equal(t, next, b.Min, "tier %s", tier)
		next = b.Max + 1
	}
	assert.Equal(t, domain.MaxRarityScore+1, next)
}

func TestScoreRarity_StaysInBand(t *testing.T) {
	tiers := append([]domain.RarityTier{domain.RarityQuantum}, domain.StandardRarities...)
	for _, tier := range tiers {
		b := RarityBand(tier)
		seenMin, seenMax := b.Max, b.Min
		for i := 0; i < 10_000; i++ {
			score := ScoreRarity(tier, utils.RandomInt)
			if score < b.Min || score > b.Max {
				t.Fatalf("tier %s produced %d outside [%d,%d]", tier, score, b.Min, b.Max)
			}
			seenMin = min(seenMin, score)
			seenMax = max(seenMax, score)
		}
		assert.Less(t, seenMin, b.Min+(b.Max-b.Min)/4, "tier %s lower quarter never reached", tier)
		assert.Greater(t, seenMax, b.Max-(b.Max-b.Min)/4, "tier %s upper quarter never reached", tier)
	}
}

func TestScoreRarity_ClampsBadSource(t *testing.T) {
	assert.Equal(t, 200, ScoreRarity(domain.RarityCommon, func(_, _ int) int { return 5000 }))
	assert.Equal(t, 801, ScoreRarity(domain.RarityLegendary, func(_, _ int) int { return -3 }))
	assert.Equal(t, 401, ScoreRarity(domain.RarityRare, func(lo, _ int) int { return lo }))
}
