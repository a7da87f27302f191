package repository

import (
	"context"

	"github.com/osse101/gachabox/internal/domain"
)

// Gacha defines the persistence needed by rolls
type Gacha interface {
	// GetBalance returns domain.ErrUserNotFound when the user has no balance row
	GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error)
	GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	// GetPulls returns the draw log ordered by sequence
	GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error)
	BeginTx(ctx context.Context) (GachaTx, error)
}

// GachaTx is the atomic unit of a single roll
type GachaTx interface {
	Tx
	GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error)
	// GetInventoryEntryForUpdate returns nil, nil when the user does not own the item yet
	GetInventoryEntryForUpdate(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error)
	UpsertInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error
	// ApplyBalanceDelta adds coinsDelta to coins and spentDelta to total spent in one step.
	// It fails with *domain.InsufficientFundsError instead of letting coins go negative.
	ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error)
	// AppendPull assigns the next per-user sequence number and writes the record
	AppendPull(ctx context.Context, pull *domain.PullRecord) error
}
