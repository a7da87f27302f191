package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/gachabox/internal/achievement"
	"github.com/osse101/gachabox/internal/bootstrap"
	"github.com/osse101/gachabox/internal/catalog"
	"github.com/osse101/gachabox/internal/config"
	"github.com/osse101/gachabox/internal/gacha"
	"github.com/osse101/gachabox/internal/server"
	"github.com/osse101/gachabox/internal/tracing"
	"github.com/osse101/gachabox/internal/validation"
)

// @title          Gachabox API
// @version        1.0
// @description    Loot box rolls, inventories and achievement rewards.
// @BasePath       /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in             header
// @name           X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info("Starting gachabox",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.Storage,
		"port", cfg.Port)

	if err := run(cfg); err != nil {
		slog.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.ServiceName, cfg.Version, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("Tracing shutdown failed", "error", err)
		}
	}()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	schemas := validation.NewSchemaValidator()
	// Memory storage starts empty, so it always needs the catalog
	if cfg.SeedCatalog || cfg.Storage == config.StorageMemory {
		if err := bootstrap.SeedCatalog(ctx, storage.CatalogWriter, cfg.CatalogPath, schemas); err != nil {
			storage.Close()
			return err
		}
	}
	if err := bootstrap.SeedDemoUsers(ctx, storage.Users, cfg.DemoUsers, cfg.DemoStartingCoins); err != nil {
		storage.Close()
		return err
	}

	rules, err := bootstrap.LoadAchievements(ctx, cfg.AchievementsPath, schemas)
	if err != nil {
		storage.Close()
		return err
	}

	// Rolls and claims of one user share a lock
	locks, err := bootstrap.InitializeLocks(ctx, cfg)
	if err != nil {
		storage.Close()
		return err
	}
	cachedCatalog := catalog.NewCachedCatalog(storage.Catalog, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	gachaService := gacha.NewService(cachedCatalog, storage.Gacha, locks, gacha.Config{
		DefaultBoxID:       cfg.DefaultBoxID,
		MaxConflictRetries: cfg.MaxConflictRetries,
	})
	achievementService := achievement.NewService(rules, storage.Achievements, locks, cfg.MaxConflictRetries)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateLimitWindow,
	}, bootstrap.Probe{storage, locks}, gachaService, achievementService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			_ = locks.Close()
			storage.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Storage: storage,
		Locks:   locks,
	})
	return nil
}
