package achievement

import "github.com/osse101/gachabox/internal/domain"

// allRaritiesTiers are the tiers counted by ALL_RARITIES
var allRaritiesTiers = []domain.RarityTier{
	domain.RarityCommon,
	domain.RarityRare,
	domain.RarityEpic,
	domain.RarityLegendary,
	domain.RarityQuantum,
}

// Stats is a user's history aggregated fresh for one evaluation
type Stats struct {
	TotalPulls  int
	CoinsSpent  int
	UniqueItems int
	// TierCounts is the number of distinct owned items per tier
	TierCounts map[domain.RarityTier]int

	pulls []domain.PullRecord
}

// Aggregate builds Stats. pulls must be ordered by sequence.
func Aggregate(balance *domain.UserBalance, pulls []domain.PullRecord, entries []domain.InventoryEntry) Stats {
	s := Stats{
		TotalPulls: len(pulls),
		TierCounts: make(map[domain.RarityTier]int),
		pulls:      pulls,
	}
	if balance != nil {
		s.CoinsSpent = balance.TotalCoinsSpent
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ItemID] {
			continue
		}
		seen[e.ItemID] = true
		s.UniqueItems++
		s.TierCounts[e.Rarity]++
	}
	return s
}

// TierWithinFirst reports whether tier was drawn in the first n pulls
func (s Stats) TierWithinFirst(tier domain.RarityTier, n int) bool {
	for i, p := range s.pulls {
		if i >= n {
			break
		}
		if p.Rarity == tier {
			return true
		}
	}
	return false
}

func (s Stats) owns(tier domain.RarityTier) int {
	if s.TierCounts[tier] > 0 {
		return 1
	}
	return 0
}

// Progress computes the rule's progress value from stats
func Progress(rule domain.AchievementRule, s Stats) int {
	switch rule.Type {
	case domain.AchievementFirstPull, domain.AchievementPulls:
		return s.TotalPulls
	case domain.AchievementRareItem:
		return s.owns(domain.RarityRare)
	case domain.AchievementEpicItem:
		return s.owns(domain.RarityEpic)
	case domain.AchievementLegendaryItem:
		return s.owns(domain.RarityLegendary)
	case domain.AchievementQuantumItem:
		return s.owns(domain.RarityQuantum)
	case domain.AchievementCollection:
		return s.UniqueItems
	case domain.AchievementAllRarities:
		n := 0
		for _, tier := range allRaritiesTiers {
			n += s.owns(tier)
		}
		return n
	case domain.AchievementCoinsSpent:
		return s.CoinsSpent
	case domain.AchievementLuckyStart:
		return boolProgress(s.TierWithinFirst(domain.RarityLegendary, rule.Window))
	case domain.AchievementQuantumStart:
		return boolProgress(s.TierWithinFirst(domain.RarityQuantum, rule.Window))
	}
	return 0
}

func boolProgress(b bool) int {
	if b {
		return 1
	}
	return 0
}
