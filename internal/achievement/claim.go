package achievement

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
	"github.com/osse101/gachabox/internal/repository"
	"github.com/osse101/gachabox/internal/tracing"
)

func (s *service) Claim(ctx context.Context, userID, achievementID string) (*domain.ClaimResult, error) {
	ctx, span := tracer.Start(ctx, SpanClaim, trace.WithAttributes(
		tracing.AttrUserID.String(userID),
		tracing.AttrAchievementID.String(achievementID),
	))
	result, err := s.claim(ctx, userID, achievementID)
	tracing.End(span, err)
	return result, err
}

func (s *service) claim(ctx context.Context, userID, achievementID string) (*domain.ClaimResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if achievementID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgAchievementIDRequired)
	}

	unlock, err := s.locks.LockUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *domain.ClaimResult
	err = repository.WithConflictRetry(ctx, OpClaim, s.maxRetries, func(ctx context.Context) error {
		r, err := s.claimOnce(ctx, userID, achievementID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AchievementsClaimed.WithLabelValues(achievementID).Inc()
	metrics.CoinsRewarded.Add(float64(result.Reward))
	logger.FromContext(ctx).Info(LogMsgRewardClaimed,
		"user_id", userID,
		"achievement_id", achievementID,
		"reward", result.Reward,
		"coins_balance", result.CoinsBalance)
	return result, nil
}

func (s *service) claimOnce(ctx context.Context, userID, achievementID string) (*domain.ClaimResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	progress, err := tx.GetAchievementProgressForUpdate(ctx, userID, achievementID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadProgress, err)
	}
	if progress == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProgressNotFound, achievementID)
	}
	if !progress.Completed {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotCompleted, achievementID)
	}
	if progress.Claimed {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyClaimed, achievementID)
	}
	rule, ok := s.catalog.Get(achievementID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAchievementNotFound, achievementID)
	}

	balance, err := tx.ApplyBalanceDelta(ctx, userID, rule.Reward, 0)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCredit, err)
	}
	if err := tx.MarkClaimed(ctx, userID, achievementID, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrAlreadyClaimed) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMarkClaimed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCommit, err)
	}

	return &domain.ClaimResult{
		AchievementID: achievementID,
		Reward:        rule.Reward,
		CoinsBalance:  balance.Coins,
	}, nil
}
