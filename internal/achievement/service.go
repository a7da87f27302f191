package achievement

import (
	"context"
	"time"

	"github.com/osse101/gachabox/internal/concurrency"
	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
	"github.com/osse101/gachabox/internal/tracing"
)

// Evaluator recomputes achievement progress from a user's history
type Evaluator interface {
	// Evaluate returns the rules that became completed during this call.
	// Per-rule failures are joined into the error alongside a non-nil partial result.
	Evaluate(ctx context.Context, userID string) ([]domain.AchievementRule, error)
	// Catalog returns every rule, secret ones masked
	Catalog() []domain.AchievementRule
	// ListProgress returns every rule merged with the user's progress on it
	ListProgress(ctx context.Context, userID string) ([]domain.AchievementStatus, error)
}

// Claimer pays out completed achievement rewards
type Claimer interface {
	Claim(ctx context.Context, userID, achievementID string) (*domain.ClaimResult, error)
}

// Service defines the achievement operations
type Service interface {
	Evaluator
	Claimer
}

var tracer = tracing.Tracer("github.com/osse101/gachabox/internal/achievement")

type service struct {
	catalog    *Catalog
	repo       repository.Achievement
	locks      concurrency.UserLocker
	maxRetries int
	now        func() time.Time
}

// NewService creates a new achievement service.
// locks should be the manager shared with the gacha service so claims and rolls serialize per user.
func NewService(catalog *Catalog, repo repository.Achievement, locks concurrency.UserLocker, maxRetries int) Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		catalog:    catalog,
		repo:       repo,
		locks:      locks,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

func (s *service) Catalog() []domain.AchievementRule {
	return s.catalog.Visible()
}
