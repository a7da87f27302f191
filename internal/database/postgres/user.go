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
	insertUserQuery    = `INSERT INTO users (user_id, username) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`
	insertBalanceQuery = `INSERT INTO user_balances (user_id, coins) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`
	getUserQuery       = `SELECT user_id, username, created_at FROM users WHERE user_id = $1`
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts the user and its starting balance in one transaction
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User, startingCoins int) error {
	pgTx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr(ErrMsgFailedToBeginTx, err)
	}
	t := &tx{Tx: pgTx}
	defer repository.SafeRollback(ctx, t)

	if _, err := t.Exec(ctx, insertUserQuery, user.ID, user.Username); err != nil {
		return wrapErr(ErrMsgFailedToCreateUser, err)
	}
	if _, err := t.Exec(ctx, insertBalanceQuery, user.ID, startingCoins); err != nil {
		return wrapErr(ErrMsgFailedToCreateUser, err)
	}
	return t.Commit(ctx)
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, getUserQuery, userID).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetUser, err)
	}
	u.CreatedAt = utc(u.CreatedAt)
	return &u, nil
}
