package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/token-gateway/pkg/config"
	"github.com/chainsafe/token-gateway/pkg/migrations/gatewaydb"
	"github.com/chainsafe/token-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/token-gateway/pkg/pgutil/migrations"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(mghelper.Commands, "|") + "]",
		Short:     "Manage the journal database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: slices.Clone(mghelper.Commands),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled {
				return errors.New("database is disabled in the configuration")
			}

			logger, err := config.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			db, err := pgutil.ConnectDB(cmd.Context(), &cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("error connecting to database: %w", err)
			}
			defer db.Close()

			logger.Info("Running migrations for gateway database",
				zap.String("database", cfg.Database.Database),
				zap.String("command", args[0]),
			)

			migrator := migrate.NewMigrator(db, gatewaydb.Migrations)
			return mghelper.RunMigrations(cmd.Context(), migrator, logger, args[0])
		},
	}
}
