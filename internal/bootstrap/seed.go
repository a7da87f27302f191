package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/gachabox/internal/achievement"
	"github.com/osse101/gachabox/internal/catalog"
	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/repository"
	"github.com/osse101/gachabox/internal/validation"
)

// SeedCatalog loads, validates and upserts the catalog file.
func SeedCatalog(ctx context.Context, w repository.CatalogWriter, path string, v validation.SchemaValidator) error {
	logger.FromContext(ctx).Info(LogMsgSeedingCatalog, "path", path)

	file, err := catalog.LoadFile(ctx, path, v)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	if err := catalog.Seed(ctx, w, file); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	return nil
}

// SeedDemoUsers creates each user with the starting balance. Existing users are untouched.
func SeedDemoUsers(ctx context.Context, users repository.User, ids []string, startingCoins int) error {
	for _, id := range ids {
		user := &domain.User{ID: id, Username: DemoUsernamePrefix + id}
		if err := users.CreateUser(ctx, user, startingCoins); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedSeedDemoUser, id, err)
		}
	}
	if len(ids) > 0 {
		logger.FromContext(ctx).Info(LogMsgDemoUsersSeeded, "count", len(ids), "starting_coins", startingCoins)
	}
	return nil
}

// LoadAchievements reads the rule file when a path is set and falls back to the built-in rules.
func LoadAchievements(ctx context.Context, path string, v validation.SchemaValidator) (*achievement.Catalog, error) {
	if path == "" {
		rules := achievement.DefaultCatalog()
		logger.FromContext(ctx).Info(LogMsgAchievementsLoaded, "source", "builtin", "rules", len(rules.Rules()))
		return rules, nil
	}

	rules, err := achievement.LoadCatalog(ctx, path, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAchievement, err)
	}
	logger.FromContext(ctx).Info(LogMsgAchievementsLoaded, "source", path, "rules", len(rules.Rules()))
	return rules, nil
}
