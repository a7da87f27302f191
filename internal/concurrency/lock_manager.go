package concurrency

import (
	"context"
	"sync"
)

// userKeyPrefix namespaces per-user locks so every balance-mutating path shares them
const userKeyPrefix = "user:"

type lockEntry struct {
	ch   chan struct{}
	refs int
}

// LockManager hands out one lock per key, e.g. per user ID.
// Locks are channel-based so waiting can be abandoned when the context is done.
// An entry lives only while some caller holds or waits for it.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*lockEntry)}
}

func (lm *LockManager) acquire(key string) *lockEntry {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	e, ok := lm.locks[key]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		lm.locks[key] = e
	}
	e.refs++
	return e
}

func (lm *LockManager) release(key string, e *lockEntry) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(lm.locks, key)
	}
}

// Lock blocks until the lock for key is held or ctx is done.
// The returned func releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	e := lm.acquire(key)
	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			lm.release(key, e)
		}, nil
	case <-ctx.Done():
		lm.release(key, e)
		return nil, ctx.Err()
	}
}

// LockUser locks the key shared by every operation that mutates a user's balance
func (lm *LockManager) LockUser(ctx context.Context, userID string) (func(), error) {
	return lm.Lock(ctx, userKeyPrefix+userID)
}

// size is the number of keys currently held or waited on
func (lm *LockManager) size() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
