package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapErr adds context to a driver error and maps retryable and availability
// failures onto the domain taxonomy
func wrapErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeSerializationFailure, pgCodeDeadlockDetected, pgCodeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", msg, domain.ErrTransactionConflict, err)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// utc normalizes timestamps at the storage boundary
func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// tx wraps pgx.Tx with commit error classification
type tx struct {
	pgx.Tx
}

// Commit commits the transaction
func (t *tx) Commit(ctx context.Context) error {
	if err := t.Tx.Commit(ctx); err != nil {
		return wrapErr(ErrMsgFailedToCommitTx, err)
	}
	return nil
}

var (
	_ repository.Catalog       = (*CatalogRepository)(nil)
	_ repository.CatalogWriter = (*CatalogRepository)(nil)
	_ repository.User          = (*UserRepository)(nil)
	_ repository.Gacha         = (*GachaRepository)(nil)
	_ repository.Achievement   = (*AchievementRepository)(nil)
)
