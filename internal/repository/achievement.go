package repository

import (
	"context"
	"time"

	"github.com/osse101/gachabox/internal/domain"
)

// Achievement defines the persistence needed by evaluation and claiming.
// Progress writes are conditional so concurrent evaluators cannot complete a rule twice.
type Achievement interface {
	GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error)
	GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error)
	GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error)

	ListAchievementProgress(ctx context.Context, userID string) ([]domain.UserAchievementProgress, error)
	// GetAchievementProgress returns nil, nil when no row exists
	GetAchievementProgress(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error)
	// InsertAchievementProgress reports false when a row already existed
	InsertAchievementProgress(ctx context.Context, progress *domain.UserAchievementProgress) (bool, error)
	// CompleteAchievementProgress marks a not yet completed row completed and reports whether it did
	CompleteAchievementProgress(ctx context.Context, userID, achievementID string, progress int, at time.Time) (bool, error)
	// UpdateAchievementProgress changes progress on a not yet completed row
	UpdateAchievementProgress(ctx context.Context, userID, achievementID string, progress int) error

	BeginTx(ctx context.Context) (AchievementTx, error)
}

// AchievementTx is the atomic unit of a reward claim
type AchievementTx interface {
	Tx
	// GetAchievementProgressForUpdate returns nil, nil when no row exists
	GetAchievementProgressForUpdate(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error)
	ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error)
	MarkClaimed(ctx context.Context, userID, achievementID string, at time.Time) error
}
