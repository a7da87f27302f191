package gacha

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/gachabox/internal/concurrency"
	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
	"github.com/osse101/gachabox/internal/repository"
	"github.com/osse101/gachabox/internal/tracing"
	"github.com/osse101/gachabox/internal/utils"
)

var tracer = tracing.Tracer("github.com/osse101/gachabox/internal/gacha")

// Service defines the gacha operations
type Service interface {
	// Roll spends the box cost and grants one weighted-random item, atomically
	Roll(ctx context.Context, userID, boxID string) (*domain.RollResult, error)
	ListBoxes(ctx context.Context) ([]domain.Box, error)
	GetBox(ctx context.Context, boxID string) (*domain.Box, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
}

// Config tunes the service
type Config struct {
	DefaultBoxID       string
	MaxConflictRetries int
}

type service struct {
	catalog   repository.Catalog
	repo      repository.Gacha
	locks     concurrency.UserLocker
	cfg       Config
	rnd       func() float64         // selection
	randInt   func(min, max int) int // rarity score
	now       func() time.Time
	newPullID func() string
}

// NewService creates a new gacha service
func NewService(catalog repository.Catalog, repo repository.Gacha, locks concurrency.UserLocker, cfg Config) Service {
	if cfg.DefaultBoxID == "" {
		cfg.DefaultBoxID = domain.DefaultBoxID
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		catalog:   catalog,
		repo:      repo,
		locks:     locks,
		cfg:       cfg,
		rnd:       utils.RandomFloat,
		randInt:   utils.RandomInt,
		now:       time.Now,
		newPullID: uuid.NewString,
	}
}

func (s *service) Roll(ctx context.Context, userID, boxID string) (*domain.RollResult, error) {
	ctx, span := tracer.Start(ctx, SpanRoll, trace.WithAttributes(
		tracing.AttrUserID.String(userID),
		tracing.AttrBoxID.String(boxID),
	))
	result, err := s.roll(ctx, userID, boxID)
	tracing.End(span, err)
	return result, err
}

func (s *service) roll(ctx context.Context, userID, boxID string) (*domain.RollResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if boxID == "" {
		boxID = s.cfg.DefaultBoxID
	}

	box, err := s.catalog.GetBox(ctx, boxID)
	if err != nil {
		s.recordFailure(ctx, userID, boxID, err)
		return nil, err
	}
	items, err := s.catalog.GetItemsByBox(ctx, boxID)
	if err != nil {
		err = fmt.Errorf("%s: %w", ErrMsgFailedGetItems, err)
		s.recordFailure(ctx, userID, boxID, err)
		return nil, err
	}

	unlock, err := s.locks.LockUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *domain.RollResult
	err = repository.WithConflictRetry(ctx, OpRoll, s.cfg.MaxConflictRetries, func(ctx context.Context) error {
		r, err := s.rollOnce(ctx, userID, box, items)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, userID, boxID, err)
		return nil, err
	}

	metrics.RollsTotal.WithLabelValues(box.ID, string(result.Item.Rarity)).Inc()
	metrics.CoinsSpent.Add(float64(box.Cost))
	log.Info(LogMsgRollCompleted,
		"user_id", userID,
		"box_id", box.ID,
		"item_id", result.Item.ID,
		"rarity", result.Item.Rarity,
		"rarity_score", result.RarityScore,
		"is_new", result.IsNew,
		"pull_number", result.PullNumber)
	return result, nil
}

// rollOnce is the read-validate-write unit re-run on conflict
func (s *service) rollOnce(ctx context.Context, userID string, box *domain.Box, items []domain.Item) (*domain.RollResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedGetBalance, err)
	}
	if balance.Coins < box.Cost {
		return nil, &domain.InsufficientFundsError{Balance: balance.Coins, Required: box.Cost}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyBoxPool, box.ID)
	}

	item, err := SelectItem(items, s.rnd)
	if err != nil {
		return nil, fmt.Errorf("box %s: %w", box.ID, err)
	}
	score := ScoreRarity(item.Rarity, s.randInt)
	now := s.now().UTC()

	updated, err := tx.ApplyBalanceDelta(ctx, userID, -box.Cost, box.Cost)
	if err != nil {
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedDebit, err)
	}

	existing, err := tx.GetInventoryEntryForUpdate(ctx, userID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInventory, err)
	}
	entry := accumulate(existing, userID, item, score, now)
	if err := tx.UpsertInventoryEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInventory, err)
	}

	pull := &domain.PullRecord{
		ID:          s.newPullID(),
		UserID:      userID,
		BoxID:       box.ID,
		ItemID:      item.ID,
		Rarity:      item.Rarity,
		RarityScore: score,
		Cost:        box.Cost,
		PulledAt:    now,
	}
	if err := tx.AppendPull(ctx, pull); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedAppendPull, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCommit, err)
	}

	return &domain.RollResult{
		Item:           *item,
		RarityScore:    score,
		IsNew:          existing == nil,
		TotalQuantity:  entry.Quantity,
		CoinsRemaining: updated.Coins,
		PullNumber:     pull.Sequence,
	}, nil
}

// accumulate folds a draw into the user's entry for the item.
// Quantity grows, score and last-obtained are overwritten, first-obtained is kept.
func accumulate(existing *domain.InventoryEntry, userID string, item *domain.Item, score int, now time.Time) *domain.InventoryEntry {
	if existing == nil {
		return &domain.InventoryEntry{
			UserID:          userID,
			ItemID:          item.ID,
			Quantity:        1,
			RarityScore:     score,
			Rarity:          item.Rarity,
			FirstObtainedAt: now,
			LastObtainedAt:  now,
		}
	}
	entry := *existing
	entry.Quantity++
	entry.RarityScore = score
	entry.Rarity = item.Rarity
	entry.LastObtainedAt = now
	return &entry
}

func (s *service) recordFailure(ctx context.Context, userID, boxID string, err error) {
	reason := failureReason(err)
	metrics.RollFailures.WithLabelValues(reason).Inc()

	log := logger.FromContext(ctx)
	if reason == ReasonInternal || reason == ReasonConflict {
		log.Error(LogMsgRollFailed, "user_id", userID, "box_id", boxID, "reason", reason, "error", err)
		return
	}
	log.Info(LogMsgRollFailed, "user_id", userID, "box_id", boxID, "reason", reason, "error", err)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBoxNotFound):
		return ReasonBoxNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return ReasonUserNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, domain.ErrEmptyBoxPool):
		return ReasonEmptyPool
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return ReasonInvalidConfig
	case errors.Is(err, domain.ErrTransactionConflict):
		return ReasonConflict
	default:
		return ReasonInternal
	}
}

// ListBoxes returns every box with its item pool attached
func (s *service) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	boxes, err := s.catalog.ListBoxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	for i := range boxes {
		items, err := s.catalog.GetItemsByBox(ctx, boxes[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedGetItems, err)
		}
		boxes[i].Items = items
	}
	return boxes, nil
}

// GetBox returns one box with its item pool attached
func (s *service) GetBox(ctx context.Context, boxID string) (*domain.Box, error) {
	box, err := s.catalog.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	items, err := s.catalog.GetItemsByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedGetItems, err)
	}
	box.Items = items
	return box, nil
}

// GetInventory returns the user's inventory; unknown users are an error rather than an empty list
func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	if _, err := s.repo.GetBalance(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetAllInventoryEntries(ctx, userID)
}
