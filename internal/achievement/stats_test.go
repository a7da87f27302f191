package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/gachabox/internal/domain"
)

func pullsOf(tiers ...domain.RarityTier) []domain.PullRecord {
	pulls := make([]domain.PullRecord, len(tiers))
	for i, tier := range tiers {
		pulls[i] = domain.PullRecord{Sequence: int64(i + 1), Rarity: tier}
	}
	return pulls
}

func entriesOf(tiers ...domain.RarityTier) []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, len(tiers))
	for i, tier := range tiers {
		entries[i] = domain.InventoryEntry{ItemID: string(tier) + "-" + string(rune('a'+i)), Rarity: tier, Quantity: 1}
	}
	return entries
}

func repeat(tier domain.RarityTier, n int) []domain.RarityTier {
	out := make([]domain.RarityTier, n)
	for i := range out {
		out[i] = tier
	}
	return out
}

func TestAggregate(t *testing.T) {
	balance := &domain.UserBalance{Coins: 10, TotalCoinsSpent: 700}
	entries := entriesOf(domain.RarityCommon, domain.RarityCommon, domain.RarityEpic)
	entries = append(entries, entries[0])

	s := Aggregate(balance, pullsOf(domain.RarityCommon, domain.RarityEpic), entries)

	assert.Equal(t, 2, s.TotalPulls)
	assert.Equal(t, 700, s.CoinsSpent)
	assert.Equal(t, 3, s.UniqueItems, "duplicate entries count once")
	assert.Equal(t, 2, s.TierCounts[domain.RarityCommon])
	assert.Equal(t, 1, s.TierCounts[domain.RarityEpic])

	empty := Aggregate(nil, nil, nil)
	assert.Zero(t, empty.TotalPulls)
	assert.Zero(t, empty.CoinsSpent)
}

func TestTierWithinFirst(t *testing.T) {
	at10 := append(repeat(domain.RarityCommon, 9), domain.RarityLegendary)
	at11 := append(repeat(domain.RarityCommon, 10), domain.RarityLegendary)

	assert.True(t, Aggregate(nil, pullsOf(at10...), nil).TierWithinFirst(domain.RarityLegendary, 10))
	assert.False(t, Aggregate(nil, pullsOf(at11...), nil).TierWithinFirst(domain.RarityLegendary, 10))
	assert.False(t, Aggregate(nil, nil, nil).TierWithinFirst(domain.RarityLegendary, 10))
}

func TestProgress(t *testing.T) {
	stats := Aggregate(
		&domain.UserBalance{TotalCoinsSpent: 1200},
		pullsOf(domain.RarityCommon, domain.RarityQuantum, domain.RarityRare, domain.RarityCommon, domain.RarityCommon, domain.RarityLegendary),
		entriesOf(domain.RarityCommon, domain.RarityQuantum, domain.RarityRare, domain.RarityUncommon, domain.RarityLegendary),
	)

	tests := []struct {
		rule domain.AchievementRule
		want int
	}{
		{domain.AchievementRule{Type: domain.AchievementFirstPull}, 6},
		{domain.AchievementRule{Type: domain.AchievementPulls}, 6},
		{domain.AchievementRule{Type: domain.AchievementRareItem}, 1},
		{domain.AchievementRule{Type: domain.AchievementEpicItem}, 0},
		{domain.AchievementRule{Type: domain.AchievementLegendaryItem}, 1},
		{domain.AchievementRule{Type: domain.AchievementQuantumItem}, 1},
		{domain.AchievementRule{Type: domain.AchievementCollection}, 5},
		// uncommon does not count, epic is missing
		{domain.AchievementRule{Type: domain.AchievementAllRarities}, 4},
		{domain.AchievementRule{Type: domain.AchievementCoinsSpent}, 1200},
		{domain.AchievementRule{Type: domain.AchievementLuckyStart, Window: 10}, 1},
		{domain.AchievementRule{Type: domain.AchievementLuckyStart, Window: 5}, 0},
		{domain.AchievementRule{Type: domain.AchievementQuantumStart, Window: 2}, 1},
		{domain.AchievementRule{Type: domain.AchievementQuantumStart, Window: 1}, 0},
		{domain.AchievementRule{Type: "UNKNOWN"}, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.rule, stats))
		})
	}
}

func TestProgress_AllRaritiesComplete(t *testing.T) {
	stats := Aggregate(nil, nil, entriesOf(
		domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary, domain.RarityQuantum,
	))
	assert.Equal(t, 5, Progress(domain.AchievementRule{Type: domain.AchievementAllRarities}, stats))
}
