package cli

import (
	"errors"
	"fmt"

	"medisync/internal/db"
	"medisync/internal/db/migrate"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the demo_requests table",
		Long:  `Applies the demo_requests schema to the PostgreSQL database at DATABASE_URL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is not set")
			}

			database, err := db.Open(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer database.Close()

			var opts []schema.MigrateOption
			if drop, _ := cmd.Flags().GetBool("drop-index"); drop {
				opts = append(opts, schema.WithDropIndex(true))
			}
			if err := migrate.Create(cmd.Context(), database.Driver, opts...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Info("Schema is up to date")
			return nil
		},
	}
	cmd.Flags().Bool("drop-index", false, "Drop indexes that are no longer in the schema")
	return cmd
}
