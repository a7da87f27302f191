package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/gachabox/internal/bootstrap"
	"github.com/osse101/gachabox/internal/config"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/validation"
)

const seedTimeout = 2 * time.Minute

type seedOptions struct {
	catalogPath string
	users       string
	coins       int
	cfg         *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the gacha catalog and demo users into postgres",
		Long: `Upsert every box and item of the catalog file into postgres and create demo users.
Migrations are applied first. Existing users keep their balance.

EXAMPLES:
  # Seed the default catalog
  seed

  # Seed a custom catalog and two users with 500 coins each
  seed --catalog configs/catalog.json --users alice,bob --coins 500

  # Only check the config files
  seed validate
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, logger.ComponentSeed))

			if !cmd.Flags().Changed("catalog") {
				opts.catalogPath = cfg.CatalogPath
			}
			if !cmd.Flags().Changed("users") {
				opts.users = strings.Join(cfg.DemoUsers, ",")
			}
			if !cmd.Flags().Changed("coins") {
				opts.coins = cfg.DemoStartingCoins
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "catalog JSON file (default $CATALOG_PATH)")
	rootCmd.Flags().StringVarP(&opts.users, "users", "u", "", "comma separated demo user IDs (default $DEMO_USERS)")
	rootCmd.Flags().IntVar(&opts.coins, "coins", 0, "starting coins for new demo users (default $DEMO_STARTING_COINS)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newValidateCmd(opts))
	return rootCmd
}

func runSeed(ctx context.Context, opts *seedOptions) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	if opts.coins < 0 {
		return fmt.Errorf("--coins must not be negative, got %d", opts.coins)
	}

	// Seeding only makes sense against a database that outlives the process
	cfg := *opts.cfg
	cfg.Storage = config.StoragePostgres
	cfg.RunMigrations = true

	storage, err := bootstrap.InitializeStorage(ctx, &cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := bootstrap.SeedCatalog(ctx, storage.CatalogWriter, opts.catalogPath, validation.NewSchemaValidator()); err != nil {
		return err
	}
	if err := bootstrap.SeedDemoUsers(ctx, storage.Users, splitUsers(opts.users), opts.coins); err != nil {
		return err
	}

	slog.Info("Seed complete", "catalog", opts.catalogPath)
	return nil
}

func splitUsers(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
