package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/gachabox/internal/bootstrap"
	"github.com/osse101/gachabox/internal/catalog"
	"github.com/osse101/gachabox/internal/validation"
)

func newValidateCmd(opts *seedOptions) *cobra.Command {
	var achievementsPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and achievement files without touching the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("achievements") {
				achievementsPath = opts.cfg.AchievementsPath
			}

			ctx := cmd.Context()
			schemas := validation.NewSchemaValidator()

			file, err := catalog.LoadFile(ctx, opts.catalogPath, schemas)
			if err != nil {
				return err
			}
			rules, err := bootstrap.LoadAchievements(ctx, achievementsPath, schemas)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d boxes\nachievements ok: %d rules\n", len(file.Boxes), len(rules.Rules()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&achievementsPath, "achievements", "a", "", "achievement rules JSON file (default $ACHIEVEMENTS_PATH, built-in rules when empty)")
	return cmd
}
