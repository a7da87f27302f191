package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

const (
	getBalanceForUpdateQuery = getBalanceQuery + ` FOR UPDATE`

	getInventoryEntryForUpdateQuery = `SELECT ` + inventoryColumns + ` FROM inventory_entries WHERE user_id = $1 AND item_id = $2 FOR UPDATE`

	upsertInventoryEntryQuery = `
		INSERT INTO inventory_entries (user_id, item_id, quantity, rarity_score, rarity, first_obtained_at, last_obtained_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET quantity = EXCLUDED.quantity, rarity_score = EXCLUDED.rarity_score,
		    rarity = EXCLUDED.rarity, last_obtained_at = EXCLUDED.last_obtained_at`

	appendPullQuery = `
		INSERT INTO pull_records (pull_id, user_id, sequence, box_id, item_id, rarity, rarity_score, cost, pulled_at)
		SELECT $1::uuid, $2, COALESCE(MAX(sequence), 0) + 1, $3, $4, $5, $6, $7, $8
		FROM pull_records WHERE user_id = $2
		RETURNING sequence`
)

// GachaRepository implements repository.Gacha for PostgreSQL
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

// GachaTx implements repository.GachaTx
type GachaTx struct {
	*tx
}

// BeginTx starts a new transaction
func (r *GachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	pgTx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTx, err)
	}
	return &GachaTx{tx: &tx{Tx: pgTx}}, nil
}

// GetBalance retrieves the balance of a user
func (r *GachaRepository) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	return getBalance(ctx, r.db, getBalanceQuery, userID)
}

// GetAllInventoryEntries returns every inventory entry of a user
func (r *GachaRepository) GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return getInventory(ctx, r.db, userID)
}

// GetPulls returns the draw log of a user ordered by sequence
func (r *GachaRepository) GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error) {
	return getPulls(ctx, r.db, userID)
}

// GetBalance locks and reads the balance row, serializing rolls of the same user
func (t *GachaTx) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	return getBalance(ctx, t.Tx, getBalanceForUpdateQuery, userID)
}

// GetInventoryEntryForUpdate locks the entry for (user, item) if it exists
func (t *GachaTx) GetInventoryEntryForUpdate(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	e, err := scanInventoryEntry(t.QueryRow(ctx, getInventoryEntryForUpdateQuery, userID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	return e, nil
}

// UpsertInventoryEntry writes the entry. FirstObtainedAt is kept on conflict.
func (t *GachaTx) UpsertInventoryEntry(ctx context.Context, e *domain.InventoryEntry) error {
	_, err := t.Exec(ctx, upsertInventoryEntryQuery,
		e.UserID, e.ItemID, e.Quantity, e.RarityScore, string(e.Rarity), e.FirstObtainedAt, e.LastObtainedAt)
	if err != nil {
		return wrapErr(ErrMsgFailedToSaveInventory, err)
	}
	return nil
}

// ApplyBalanceDelta atomically adjusts coins and total spent
func (t *GachaTx) ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	return applyDelta(ctx, t.Tx, userID, coinsDelta, spentDelta)
}

// AppendPull writes the pull with the next sequence number for the user
func (t *GachaTx) AppendPull(ctx context.Context, p *domain.PullRecord) error {
	err := t.QueryRow(ctx, appendPullQuery,
		p.ID, p.UserID, p.BoxID, p.ItemID, string(p.Rarity), p.RarityScore, p.Cost, p.PulledAt,
	).Scan(&p.Sequence)
	if err != nil {
		return wrapErr(ErrMsgFailedToAppendPull, err)
	}
	return nil
}
