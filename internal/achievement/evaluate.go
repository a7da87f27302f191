package achievement

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/metrics"
	"github.com/osse101/gachabox/internal/tracing"
)

func (s *service) Evaluate(ctx context.Context, userID string) ([]domain.AchievementRule, error) {
	ctx, span := tracer.Start(ctx, SpanEvaluate, trace.WithAttributes(tracing.AttrUserID.String(userID)))
	completed, err := s.evaluate(ctx, userID)
	tracing.End(span, err)
	return completed, err
}

func (s *service) evaluate(ctx context.Context, userID string) ([]domain.AchievementRule, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}

	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListAchievementProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadProgress, err)
	}
	existing := make(map[string]*domain.UserAchievementProgress, len(rows))
	for i := range rows {
		existing[rows[i].AchievementID] = &rows[i]
	}

	// non-nil even when some rules fail
	completed := make([]domain.AchievementRule, 0)
	var errs []error
	for _, rule := range s.catalog.Rules() {
		done, err := s.evaluateRule(ctx, userID, rule, stats, existing[rule.ID])
		if err != nil {
			metrics.RuleEvaluationFailures.WithLabelValues(rule.ID).Inc()
			log.Warn(LogMsgRuleEvaluationFailed, "user_id", userID, "achievement_id", rule.ID, "error", err)
			errs = append(errs, fmt.Errorf("rule %s: %w", rule.ID, err))
			continue
		}
		if done {
			metrics.AchievementsCompleted.WithLabelValues(rule.ID).Inc()
			log.Info(LogMsgAchievementCompleted, "user_id", userID, "achievement_id", rule.ID, "reward", rule.Reward)
			completed = append(completed, rule)
		}
	}

	return completed, errors.Join(errs...)
}

// evaluateRule applies one rule and reports whether this call completed it
func (s *service) evaluateRule(ctx context.Context, userID string, rule domain.AchievementRule, stats Stats, current *domain.UserAchievementProgress) (bool, error) {
	progress := Progress(rule, stats)
	reached := progress >= rule.Requirement
	now := s.now().UTC()

	if current == nil {
		row := &domain.UserAchievementProgress{
			UserID:        userID,
			AchievementID: rule.ID,
			Progress:      progress,
			Completed:     reached,
			CreatedAt:     now,
		}
		if reached {
			row.CompletedAt = &now
		}
		inserted, err := s.repo.InsertAchievementProgress(ctx, row)
		if err != nil {
			return false, err
		}
		if inserted {
			return reached, nil
		}

		// Someone else created the row first
		current, err = s.repo.GetAchievementProgress(ctx, userID, rule.ID)
		if err != nil {
			return false, err
		}
		if current == nil {
			return false, domain.ErrProgressNotFound
		}
	}

	switch {
	case current.Completed:
		return false, nil
	case reached:
		return s.repo.CompleteAchievementProgress(ctx, userID, rule.ID, progress, now)
	case progress != current.Progress:
		return false, s.repo.UpdateAchievementProgress(ctx, userID, rule.ID, progress)
	}
	return false, nil
}

func (s *service) loadStats(ctx context.Context, userID string) (Stats, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return Stats{}, err
		}
		return Stats{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadStats, err)
	}
	pulls, err := s.repo.GetPulls(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadStats, err)
	}
	entries, err := s.repo.GetAllInventoryEntries(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadStats, err)
	}
	return Aggregate(balance, pulls, entries), nil
}

// ListProgress returns every rule with the user's progress, creating missing rows at zero.
// Secret rules stay masked until completed.
func (s *service) ListProgress(ctx context.Context, userID string) ([]domain.AchievementStatus, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if _, err := s.repo.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListAchievementProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadProgress, err)
	}
	byID := make(map[string]domain.UserAchievementProgress, len(rows))
	for _, r := range rows {
		byID[r.AchievementID] = r
	}

	rules := s.catalog.Rules()
	out := make([]domain.AchievementStatus, 0, len(rules))
	for _, rule := range rules {
		row, ok := byID[rule.ID]
		if !ok {
			row = domain.UserAchievementProgress{
				UserID:        userID,
				AchievementID: rule.ID,
				CreatedAt:     s.now().UTC(),
			}
			if _, err := s.repo.InsertAchievementProgress(ctx, &row); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadProgress, err)
			}
		}

		if !row.Completed {
			rule = Mask(rule)
		}
		out = append(out, domain.AchievementStatus{
			AchievementRule: rule,
			Progress:        row.Progress,
			Completed:       row.Completed,
			CompletedAt:     row.CompletedAt,
			Claimed:         row.Claimed,
			ClaimedAt:       row.ClaimedAt,
		})
	}
	return out, nil
}
