package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/gachabox/internal/domain"
)

const (
	balanceColumns      = `user_id, coins, total_coins_spent, updated_at`
	inventoryColumns    = `user_id, item_id, quantity, rarity_score, rarity, first_obtained_at, last_obtained_at`
	pullColumns         = `pull_id::text, user_id, sequence, box_id, item_id, rarity, rarity_score, cost, pulled_at`
	progressColumns     = `user_id, achievement_id, progress, completed, completed_at, claimed, claimed_at, created_at`
	itemColumns         = `item_id, box_id, name, description, rarity, weight, image_url`
	getBalanceQuery     = `SELECT ` + balanceColumns + ` FROM user_balances WHERE user_id = $1`
	getInventoryQuery   = `SELECT ` + inventoryColumns + ` FROM inventory_entries WHERE user_id = $1 ORDER BY first_obtained_at, item_id`
	getPullsQuery       = `SELECT ` + pullColumns + ` FROM pull_records WHERE user_id = $1 ORDER BY sequence`
	getBalanceCoins     = `SELECT coins FROM user_balances WHERE user_id = $1`
	applyBalanceDelta   = `UPDATE user_balances SET coins = coins + $2, total_coins_spent = total_coins_spent + $3, updated_at = NOW() WHERE user_id = $1 AND coins + $2 >= 0 RETURNING ` + balanceColumns
	selectProgressQuery = `SELECT ` + progressColumns + ` FROM user_achievements WHERE user_id = $1`
)

func scanBalance(row pgx.Row) (*domain.UserBalance, error) {
	var b domain.UserBalance
	if err := row.Scan(&b.UserID, &b.Coins, &b.TotalCoinsSpent, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.UpdatedAt = utc(b.UpdatedAt)
	return &b, nil
}

func scanInventoryEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var (
		e      domain.InventoryEntry
		rarity string
	)
	if err := row.Scan(&e.UserID, &e.ItemID, &e.Quantity, &e.RarityScore, &rarity, &e.FirstObtainedAt, &e.LastObtainedAt); err != nil {
		return nil, err
	}
	e.Rarity = domain.RarityTier(rarity)
	e.FirstObtainedAt = utc(e.FirstObtainedAt)
	e.LastObtainedAt = utc(e.LastObtainedAt)
	return &e, nil
}

func scanPull(row pgx.Row) (*domain.PullRecord, error) {
	var (
		p      domain.PullRecord
		rarity string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Sequence, &p.BoxID, &p.ItemID, &rarity, &p.RarityScore, &p.Cost, &p.PulledAt); err != nil {
		return nil, err
	}
	p.Rarity = domain.RarityTier(rarity)
	p.PulledAt = utc(p.PulledAt)
	return &p, nil
}

func scanProgress(row pgx.Row) (*domain.UserAchievementProgress, error) {
	var p domain.UserAchievementProgress
	if err := row.Scan(&p.UserID, &p.AchievementID, &p.Progress, &p.Completed, &p.CompletedAt, &p.Claimed, &p.ClaimedAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.CompletedAt = utcPtr(p.CompletedAt)
	p.ClaimedAt = utcPtr(p.ClaimedAt)
	p.CreatedAt = utc(p.CreatedAt)
	return &p, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		it     domain.Item
		rarity string
	)
	if err := row.Scan(&it.ID, &it.BoxID, &it.Name, &it.Description, &rarity, &it.Weight, &it.ImageURL); err != nil {
		return nil, err
	}
	it.Rarity = domain.RarityTier(rarity)
	return &it, nil
}

// collect scans every row with fn
func collect[T any](rows pgx.Rows, fn func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		v, err := fn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func getBalance(ctx context.Context, q querier, query, userID string) (*domain.UserBalance, error) {
	b, err := scanBalance(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetBalance, err)
	}
	return b, nil
}

func getInventory(ctx context.Context, q querier, userID string) ([]domain.InventoryEntry, error) {
	rows, err := q.Query(ctx, getInventoryQuery, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	entries, err := collect(rows, scanInventoryEntry)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}

func getPulls(ctx context.Context, q querier, userID string) ([]domain.PullRecord, error) {
	rows, err := q.Query(ctx, getPullsQuery, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPulls, err)
	}
	pulls, err := collect(rows, scanPull)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetPulls, err)
	}
	return pulls, nil
}

// applyDelta performs the guarded single-statement balance update.
// When no row is updated it distinguishes a missing user from a short balance.
func applyDelta(ctx context.Context, q querier, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	b, err := scanBalance(q.QueryRow(ctx, applyBalanceDelta, userID, coinsDelta, spentDelta))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrapErr(ErrMsgFailedToUpdateBalance, err)
	}

	var coins int
	if err := q.QueryRow(ctx, getBalanceCoins, userID).Scan(&coins); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr(ErrMsgFailedToUpdateBalance, err)
	}
	return nil, &domain.InsufficientFundsError{Balance: coins, Required: -coinsDelta}
}

// getProgress loads one progress row, optionally locking it. Missing rows return nil, nil.
func getProgress(ctx context.Context, q querier, userID, achievementID string, forUpdate bool) (*domain.UserAchievementProgress, error) {
	query := selectProgressQuery + ` AND achievement_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	p, err := scanProgress(q.QueryRow(ctx, query, userID, achievementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetProgress, err)
	}
	return p, nil
}
