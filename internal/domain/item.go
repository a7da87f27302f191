package domain

// RarityTier is the categorical quality of an item.
type RarityTier string

const (
	RarityCommon    RarityTier = "common"
	RarityUncommon  RarityTier = "uncommon"
	RarityRare      RarityTier = "rare"
	RarityEpic      RarityTier = "epic"
	RarityLegendary RarityTier = "legendary"
	RarityQuantum   RarityTier = "quantum" // secret tier, never listed in the odds table
)

// StandardRarities lists the public tiers from most to least common.
var StandardRarities = []RarityTier{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// IsValid reports whether t is one of the known tiers, including the secret one.
func (t RarityTier) IsValid() bool {
	switch t {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityQuantum:
		return true
	}
	return false
}

// Box is a purchasable pool of items with a fixed coin cost.
type Box struct {
	ID          string   `json:"id" db:"box_id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	Cost        int      `json:"cost" db:"cost"`
	ItemIDs     []string `json:"item_ids"`
	Items       []Item   `json:"items,omitempty"`
}

// Item is one entry of a box pool. Weight is relative to the other items of the same box.
type Item struct {
	ID          string     `json:"id" db:"item_id"`
	BoxID       string     `json:"box_id" db:"box_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Rarity      RarityTier `json:"rarity" db:"rarity"`
	Weight      float64    `json:"weight" db:"weight"`
	ImageURL    string     `json:"image_url,omitempty" db:"image_url"`
}
