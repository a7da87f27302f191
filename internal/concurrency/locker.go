package concurrency

import "context"

// UserLocker serializes every operation that mutates one user's balance.
// The returned func releases the lock and must be called exactly once.
type UserLocker interface {
	LockUser(ctx context.Context, userID string) (func(), error)
}

var (
	_ UserLocker = (*LockManager)(nil)
	_ UserLocker = (*RedisLocker)(nil)
)
