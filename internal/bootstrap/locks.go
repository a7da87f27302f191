package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/gachabox/internal/concurrency"
	"github.com/osse101/gachabox/internal/config"
	"github.com/osse101/gachabox/internal/logger"
)

// Locks is the per-user locker shared by the gacha and achievement services
type Locks struct {
	concurrency.UserLocker
	client *redis.Client
}

// Ping checks redis when locks live there
func (l *Locks) Ping(ctx context.Context) error {
	if l.client == nil {
		return nil
	}
	return l.client.Ping(ctx).Err()
}

// Close releases the redis connection, if any
func (l *Locks) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}

// InitializeLocks uses redis when REDIS_ADDR is set and in-process locks otherwise.
// Several app instances over one database need the redis locker.
func InitializeLocks(ctx context.Context, cfg *config.Config) (*Locks, error) {
	log := logger.FromContext(ctx)
	if cfg.RedisAddr == "" {
		log.Info(LogMsgUsingLocalLocks)
		return &Locks{UserLocker: concurrency.NewLockManager()}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
	}

	log.Info(LogMsgUsingRedisLocks, "addr", cfg.RedisAddr, "ttl", cfg.LockTTL)
	return &Locks{
		UserLocker: concurrency.NewRedisLocker(client, cfg.LockTTL),
		client:     client,
	}, nil
}

// Pinger is a dependency probed by readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe pings every dependency and joins the failures
type Probe []Pinger

func (p Probe) Ping(ctx context.Context) error {
	var errs []error
	for _, dep := range p {
		if err := dep.Ping(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
