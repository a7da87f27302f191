package domain

import "time"

// AchievementType selects how progress is computed for a rule.
type AchievementType string

const (
	AchievementFirstPull     AchievementType = "FIRST_PULL"
	AchievementPulls         AchievementType = "PULLS"
	AchievementRareItem      AchievementType = "RARE_ITEM"
	AchievementEpicItem      AchievementType = "EPIC_ITEM"
	AchievementLegendaryItem AchievementType = "LEGENDARY_ITEM"
	AchievementQuantumItem   AchievementType = "QUANTUM_ITEM"
	AchievementCollection    AchievementType = "COLLECTION"
	AchievementAllRarities   AchievementType = "ALL_RARITIES"
	AchievementCoinsSpent    AchievementType = "COINS_SPENT"
	AchievementLuckyStart    AchievementType = "LUCKY_START"
	AchievementQuantumStart  AchievementType = "QUANTUM_START"
)

// AchievementRule is an immutable catalog entry.
// Window is only meaningful for the *_START types: the number of opening pulls inspected.
type AchievementRule struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        AchievementType `json:"type"`
	Requirement int             `json:"requirement"`
	Reward      int             `json:"reward"`
	Icon        string          `json:"icon,omitempty"`
	Tier        string          `json:"tier,omitempty"`
	Secret      bool            `json:"secret,omitempty"`
	Window      int             `json:"window,omitempty"`
}

// UserAchievementProgress tracks one rule for one user.
// Completed and Claimed only ever move from false to true.
type UserAchievementProgress struct {
	UserID        string     `json:"user_id" db:"user_id"`
	AchievementID string     `json:"achievement_id" db:"achievement_id"`
	Progress      int        `json:"progress" db:"progress"`
	Completed     bool       `json:"completed" db:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Claimed       bool       `json:"claimed" db:"claimed"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty" db:"claimed_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// AchievementStatus is a rule merged with the caller's progress on it.
type AchievementStatus struct {
	AchievementRule
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Claimed     bool       `json:"claimed"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
}

// ClaimResult reports a paid-out achievement reward.
type ClaimResult struct {
	AchievementID string `json:"achievement_id"`
	Reward        int    `json:"reward"`
	CoinsBalance  int    `json:"coins_balance"`
}
