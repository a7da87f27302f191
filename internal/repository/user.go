package repository

import (
	"context"

	"github.com/osse101/gachabox/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUser inserts the user and its balance row. Existing users are left untouched.
	CreateUser(ctx context.Context, user *domain.User, startingCoins int) error
	// GetUser returns domain.ErrUserNotFound when the user does not exist
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
