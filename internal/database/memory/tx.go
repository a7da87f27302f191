package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

// Tx buffers writes and validates read versions on commit.
// It implements both repository.GachaTx and repository.AchievementTx.
type Tx struct {
	s      *Store
	reads  map[string]uint64
	writes map[string]any
	done   bool
}

func (s *Store) newTx() *Tx {
	return &Tx{
		s:      s,
		reads:  make(map[string]uint64),
		writes: make(map[string]any),
	}
}

// read returns the document as seen by this transaction
func (t *Tx) read(key string) (any, bool) {
	if doc, ok := t.writes[key]; ok {
		return doc, true
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, seen := t.reads[key]; !seen {
		t.reads[key] = t.s.versions[key]
	}
	doc, ok := t.s.docs[key]
	return doc, ok
}

func (t *Tx) write(key string, doc any) {
	if _, seen := t.reads[key]; !seen {
		t.read(key)
	}
	t.writes[key] = doc
}

// Commit applies the buffered writes if nothing this transaction read has changed
func (t *Tx) Commit(context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for key, version := range t.reads {
		if t.s.versions[key] != version {
			return fmt.Errorf("%w: document %s changed", domain.ErrTransactionConflict, key)
		}
	}
	for key, doc := range t.writes {
		t.s.put(key, doc)
	}
	return nil
}

// Rollback discards the buffered writes
func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	return nil
}

// GetBalance retrieves the balance of a user
func (t *Tx) GetBalance(_ context.Context, userID string) (*domain.UserBalance, error) {
	doc, ok := t.read(balanceKey(userID))
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	b := doc.(domain.UserBalance)
	return &b, nil
}

// GetInventoryEntryForUpdate returns the entry for (user, item), nil when absent
func (t *Tx) GetInventoryEntryForUpdate(_ context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	doc, ok := t.read(inventoryKey(userID, itemID))
	if !ok {
		return nil, nil
	}
	e := doc.(domain.InventoryEntry)
	return &e, nil
}

// UpsertInventoryEntry buffers the entry write
func (t *Tx) UpsertInventoryEntry(_ context.Context, e *domain.InventoryEntry) error {
	entry := *e
	entry.FirstObtainedAt = entry.FirstObtainedAt.UTC()
	entry.LastObtainedAt = entry.LastObtainedAt.UTC()
	t.write(inventoryKey(e.UserID, e.ItemID), entry)
	return nil
}

// ApplyBalanceDelta adjusts coins and total spent, refusing to go negative
func (t *Tx) ApplyBalanceDelta(_ context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	key := balanceKey(userID)
	doc, ok := t.read(key)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	b := doc.(domain.UserBalance)
	if b.Coins+coinsDelta < 0 {
		return nil, &domain.InsufficientFundsError{Balance: b.Coins, Required: -coinsDelta}
	}
	b.Coins += coinsDelta
	b.TotalCoinsSpent += spentDelta
	b.UpdatedAt = t.s.clock()
	t.write(key, b)
	return &b, nil
}

// AppendPull assigns the next sequence number and buffers the log append
func (t *Tx) AppendPull(_ context.Context, p *domain.PullRecord) error {
	key := pullsKey(p.UserID)
	var log []domain.PullRecord
	if doc, ok := t.read(key); ok {
		log = doc.([]domain.PullRecord)
	}
	p.Sequence = int64(len(log)) + 1
	rec := *p
	rec.PulledAt = rec.PulledAt.UTC()

	next := make([]domain.PullRecord, len(log), len(log)+1)
	copy(next, log)
	t.write(key, append(next, rec))
	return nil
}

// GetAchievementProgressForUpdate returns the progress row, nil when absent
func (t *Tx) GetAchievementProgressForUpdate(_ context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	doc, ok := t.read(progressKey(userID, achievementID))
	if !ok {
		return nil, nil
	}
	p := doc.(domain.UserAchievementProgress)
	return &p, nil
}

// MarkClaimed flags a completed reward as paid out
func (t *Tx) MarkClaimed(_ context.Context, userID, achievementID string, at time.Time) error {
	key := progressKey(userID, achievementID)
	doc, ok := t.read(key)
	if !ok {
		return domain.ErrProgressNotFound
	}
	p := doc.(domain.UserAchievementProgress)
	if !p.Completed || p.Claimed {
		return domain.ErrAlreadyClaimed
	}
	at = at.UTC()
	p.Claimed = true
	p.ClaimedAt = &at
	t.write(key, p)
	return nil
}
