package concurrency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
)

const (
	redisKeyPrefix = "gachabox:lock:"

	DefaultRedisLockTTL     = 10 * time.Second
	DefaultRedisLockBackoff = 25 * time.Millisecond
	redisReleaseTimeout     = 2 * time.Second
)

// RedisLocker holds per-user locks in redis so several instances share them.
// A lock expires after ttl if its holder dies.
type RedisLocker struct {
	locker  *redislock.Client
	ttl     time.Duration
	backoff time.Duration
}

// NewRedisLocker creates a RedisLocker. A non-positive ttl falls back to DefaultRedisLockTTL.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultRedisLockTTL
	}
	return &RedisLocker{
		locker:  redislock.New(client),
		ttl:     ttl,
		backoff: DefaultRedisLockBackoff,
	}
}

// LockUser polls until the user's lock is obtained or ctx is done.
// Without a deadline on ctx the wait is bounded by the lock TTL.
func (l *RedisLocker) LockUser(ctx context.Context, userID string) (func(), error) {
	key := redisKeyPrefix + userKeyPrefix + userID

	lock, err := l.locker.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.backoff),
	})
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case errors.Is(err, redislock.ErrNotObtained):
		return nil, fmt.Errorf("%w: user %s is busy", domain.ErrTransactionConflict, userID)
	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	log := logger.FromContext(ctx)
	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), redisReleaseTimeout)
		defer cancel()

		if err := lock.Release(releaseCtx); err != nil {
			if errors.Is(err, redislock.ErrLockNotHeld) {
				log.Warn("User lock expired before release", "user_id", userID, "ttl", l.ttl)
				return
			}
			log.Error("Failed to release user lock", "user_id", userID, "error", err)
		}
	}, nil
}
