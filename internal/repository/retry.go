package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
)

// Backoff bounds between conflicting attempts
const (
	ConflictRetryBase = 5 * time.Millisecond
	ConflictRetryCap  = 200 * time.Millisecond
)

// WithConflictRetry runs fn and re-runs it, with jittered exponential backoff,
// while it fails with domain.ErrTransactionConflict. At most maxRetries extra attempts are made.
// Any other error stops immediately and is returned as is.
func WithConflictRetry(ctx context.Context, operation string, maxRetries int, fn func(ctx context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoff := retry.NewExponential(ConflictRetryBase)
	backoff = retry.WithCappedDuration(ConflictRetryCap, backoff)
	backoff = retry.WithJitterPercent(20, backoff)
	backoff = retry.WithMaxRetries(uint64(maxRetries), backoff)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && errors.Is(err, domain.ErrTransactionConflict) {
			metrics.TxConflicts.WithLabelValues(operation, metrics.OutcomeRetried).Inc()
			logger.FromContext(ctx).Debug("Transaction conflict, retrying",
				"operation", operation, "attempt", attempt)
			return retry.RetryableError(err)
		}
		return err
	})

	if err != nil && errors.Is(err, domain.ErrTransactionConflict) {
		metrics.TxConflicts.WithLabelValues(operation, metrics.OutcomeExhausted).Inc()
		logger.FromContext(ctx).Warn("Transaction conflict retries exhausted",
			"operation", operation, "attempts", attempt)
	}
	return err
}
