package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"trivia-quiz/internal/config"
	"trivia-quiz/internal/infra/postgres"
	"trivia-quiz/internal/logger"
)

// NewMigrateCmd applies (or rolls back) the score ledger schema.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var rollback bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			run := postgres.Migrate
			if rollback {
				run = postgres.Rollback
			}
			group, err := run(cmd.Context(), cfg.Postgres.URL)
			if err != nil {
				return err
			}
			logGroup(log, group, rollback)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rollback, "rollback", false, "roll back the last migration group")
	return cmd
}

func logGroup(log *zap.Logger, group *migrate.MigrationGroup, rollback bool) {
	if group == nil || group.IsZero() {
		log.Info("no migrations to run")
		return
	}
	verb := "migrations applied"
	if rollback {
		verb = "migrations rolled back"
	}
	log.Info(verb, zap.Int64("group", group.ID), zap.String("migrations", group.String()))
}
