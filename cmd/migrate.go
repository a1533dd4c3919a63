package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/gucfolio/database"
	"github.com/dtroode/gucfolio/internal/config"
)

// migrate is a seam for tests.
var migrate = database.Migrate

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			cmd.Println("Running migrations...")
			if err := migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}
