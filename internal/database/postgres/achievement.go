package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

const (
	listProgressQuery = selectProgressQuery + ` ORDER BY achievement_id`

	insertProgressQuery = `
		INSERT INTO user_achievements (user_id, achievement_id, progress, completed, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, achievement_id) DO NOTHING`

	completeProgressQuery = `
		UPDATE user_achievements SET progress = $3, completed = TRUE, completed_at = $4
		WHERE user_id = $1 AND achievement_id = $2 AND NOT completed`

	updateProgressQuery = `
		UPDATE user_achievements SET progress = $3
		WHERE user_id = $1 AND achievement_id = $2 AND NOT completed`

	markClaimedQuery = `
		UPDATE user_achievements SET claimed = TRUE, claimed_at = $3
		WHERE user_id = $1 AND achievement_id = $2 AND completed AND NOT claimed`
)

// AchievementRepository implements repository.Achievement for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// AchievementTx implements repository.AchievementTx
type AchievementTx struct {
	*tx
}

// BeginTx starts a new transaction
func (r *AchievementRepository) BeginTx(ctx context.Context) (repository.AchievementTx, error) {
	pgTx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTx, err)
	}
	return &AchievementTx{tx: &tx{Tx: pgTx}}, nil
}

// GetBalance retrieves the balance of a user
func (r *AchievementRepository) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	return getBalance(ctx, r.db, getBalanceQuery, userID)
}

// GetPulls returns the draw log of a user ordered by sequence
func (r *AchievementRepository) GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error) {
	return getPulls(ctx, r.db, userID)
}

// GetAllInventoryEntries returns every inventory entry of a user
func (r *AchievementRepository) GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return getInventory(ctx, r.db, userID)
}

// ListAchievementProgress returns every progress row of a user
func (r *AchievementRepository) ListAchievementProgress(ctx context.Context, userID string) ([]domain.UserAchievementProgress, error) {
	rows, err := r.db.Query(ctx, listProgressQuery, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetProgress, err)
	}
	list, err := collect(rows, scanProgress)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetProgress, err)
	}
	return list, nil
}

// GetAchievementProgress retrieves one progress row
func (r *AchievementRepository) GetAchievementProgress(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	return getProgress(ctx, r.db, userID, achievementID, false)
}

// InsertAchievementProgress creates the row unless it already exists
func (r *AchievementRepository) InsertAchievementProgress(ctx context.Context, p *domain.UserAchievementProgress) (bool, error) {
	tag, err := r.db.Exec(ctx, insertProgressQuery,
		p.UserID, p.AchievementID, p.Progress, p.Completed, p.CompletedAt, p.CreatedAt)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToSaveProgress, err)
	}
	return tag.RowsAffected() == 1, nil
}

// CompleteAchievementProgress completes the row if nobody else did first
func (r *AchievementRepository) CompleteAchievementProgress(ctx context.Context, userID, achievementID string, progress int, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, completeProgressQuery, userID, achievementID, progress, at)
	if err != nil {
		return false, wrapErr(ErrMsgFailedToSaveProgress, err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateAchievementProgress stores new progress on an incomplete row
func (r *AchievementRepository) UpdateAchievementProgress(ctx context.Context, userID, achievementID string, progress int) error {
	if _, err := r.db.Exec(ctx, updateProgressQuery, userID, achievementID, progress); err != nil {
		return wrapErr(ErrMsgFailedToSaveProgress, err)
	}
	return nil
}

// GetAchievementProgressForUpdate locks the progress row for a claim
func (t *AchievementTx) GetAchievementProgressForUpdate(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	return getProgress(ctx, t.Tx, userID, achievementID, true)
}

// ApplyBalanceDelta atomically adjusts coins and total spent
func (t *AchievementTx) ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	return applyDelta(ctx, t.Tx, userID, coinsDelta, spentDelta)
}

// MarkClaimed flags a completed reward as paid out
func (t *AchievementTx) MarkClaimed(ctx context.Context, userID, achievementID string, at time.Time) error {
	tag, err := t.Exec(ctx, markClaimedQuery, userID, achievementID, at)
	if err != nil {
		return wrapErr(ErrMsgFailedToMarkClaimed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyClaimed
	}
	return nil
}
