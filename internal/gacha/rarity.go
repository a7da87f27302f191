package gacha

import "github.com/osse101/gachabox/internal/domain"

// Band is an inclusive rarity score range
type Band struct {
	Min int
	Max int
}

// rarityBands partition [1, 1000] across the standard tiers
var rarityBands = map[domain.RarityTier]Band{
	domain.RarityCommon:    {Min: 1, Max: 200},
	domain.RarityUncommon:  {Min: 201, Max: 400},
	domain.RarityRare:      {Min: 401, Max: 600},
	domain.RarityEpic:      {Min: 601, Max: 800},
	domain.RarityLegendary: {Min: 801, Max: 1000},
}

// RarityBand returns the score range of a tier.
// Tiers outside the standard five, quantum included, span the whole scale.
func RarityBand(tier domain.RarityTier) Band {
	if b, ok := rarityBands[tier]; ok {
		return b
	}
	return Band{Min: domain.MinRarityScore, Max: domain.MaxRarityScore}
}

// ScoreRarity draws a score inside the tier's band using randInt(min, max), inclusive
func ScoreRarity(tier domain.RarityTier, randInt func(min, max int) int) int {
	b := RarityBand(tier)
	score := randInt(b.Min, b.Max)
	if score < b.Min {
		return b.Min
	}
	if score > b.Max {
		return b.Max
	}
	return score
}
