package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/gachabox/internal/config"
	"github.com/osse101/gachabox/internal/database"
	"github.com/osse101/gachabox/internal/database/memory"
	"github.com/osse101/gachabox/internal/database/postgres"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/repository"
)

// Storage bundles the repositories of one backend.
// Close releases the backend and is safe to call on memory storage.
type Storage struct {
	Catalog       repository.Catalog
	CatalogWriter repository.CatalogWriter
	Users         repository.User
	Gacha         repository.Gacha
	Achievements  repository.Achievement

	ping  func(context.Context) error
	close func()
}

// Ping reports whether the backend is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend's resources
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStorage wires every repository to one in-process store
func NewMemoryStorage(now func() time.Time) *Storage {
	store := memory.NewStore(now)
	return &Storage{
		Catalog:       store,
		CatalogWriter: store,
		Users:         store,
		Gacha:         store.Gacha(),
		Achievements:  store.Achievements(),
		ping:          store.Ping,
	}
}

// InitializeStorage opens the configured backend.
// For postgres it connects the pool and, unless disabled, applies migrations.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.FromContext(ctx)

	switch cfg.Storage {
	case config.StorageMemory:
		log.Info(LogMsgUsingMemoryStorage)
		return NewMemoryStorage(time.Now), nil

	case config.StoragePostgres:
		log.Info(LogMsgUsingPostgresStorage, "host", cfg.DBHost, "db", cfg.DBName)
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		if cfg.RunMigrations {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
			}
		} else {
			log.Info(LogMsgMigrationsSkipped)
		}

		catalogRepo := postgres.NewCatalogRepository(pool)
		return &Storage{
			Catalog:       catalogRepo,
			CatalogWriter: catalogRepo,
			Users:         postgres.NewUserRepository(pool),
			Gacha:         postgres.NewGachaRepository(pool),
			Achievements:  postgres.NewAchievementRepository(pool),
			ping:          pool.Ping,
			close:         pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.Storage)
	}
}
