package domain

// Rarity score bounds shared by every tier band.
const (
	MinRarityScore = 1
	MaxRarityScore = 1000
)

// DefaultBoxID is the box rolled when a request does not name one.
const DefaultBoxID = "box-starter"

// MaskedAchievementName replaces the name of a secret rule until it is completed.
const (
	MaskedAchievementName        = "???"
	MaskedAchievementDescription = "Secret achievement"
)
