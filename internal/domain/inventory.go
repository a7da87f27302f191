package domain

import "time"

// InventoryEntry is the single row a user has for an item.
// RarityScore and LastObtainedAt always reflect the most recent draw.
type InventoryEntry struct {
	UserID          string     `json:"user_id" db:"user_id"`
	ItemID          string     `json:"item_id" db:"item_id"`
	Quantity        int        `json:"quantity" db:"quantity"`
	RarityScore     int        `json:"rarity_score" db:"rarity_score"`
	Rarity          RarityTier `json:"rarity" db:"rarity"`
	FirstObtainedAt time.Time  `json:"first_obtained_at" db:"first_obtained_at"`
	LastObtainedAt  time.Time  `json:"last_obtained_at" db:"last_obtained_at"`
}

// PullRecord is one entry of the append-only draw log. Sequence is 1-based per user.
type PullRecord struct {
	ID          string     `json:"id" db:"pull_id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Sequence    int64      `json:"sequence" db:"sequence"`
	BoxID       string     `json:"box_id" db:"box_id"`
	ItemID      string     `json:"item_id" db:"item_id"`
	Rarity      RarityTier `json:"rarity" db:"rarity"`
	RarityScore int        `json:"rarity_score" db:"rarity_score"`
	Cost        int        `json:"cost" db:"cost"`
	PulledAt    time.Time  `json:"pulled_at" db:"pulled_at"`
}

// RollResult is what a successful roll reports back to the caller.
type RollResult struct {
	Item           Item  `json:"item"`
	RarityScore    int   `json:"rarity_score"`
	IsNew          bool  `json:"is_new"`
	TotalQuantity  int   `json:"total_quantity"`
	CoinsRemaining int   `json:"coins_remaining"`
	PullNumber     int64 `json:"pull_number"`
}
