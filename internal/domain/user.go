package domain

import "time"

// User is the minimal identity the engine needs. Authentication lives elsewhere.
type User struct {
	ID        string    `json:"id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserBalance holds the spendable coins and the lifetime spend of a user.
type UserBalance struct {
	UserID          string    `json:"user_id" db:"user_id"`
	Coins           int       `json:"coins" db:"coins"`
	TotalCoinsSpent int       `json:"total_coins_spent" db:"total_coins_spent"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
