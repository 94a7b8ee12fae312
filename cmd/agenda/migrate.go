package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	dbfs "github.com/adso-sena/agenda/db"
	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/db"
	"github.com/adso-sena/agenda/internal/logger"
)

func newMigrateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|version|force N>",
		Short:     "Manage the sqlite schema of the development backend",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"up", "down", "version", "force"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.initStderrLogger()
			storage := opts.cfg.Storage
			if !strings.EqualFold(storage.Driver, config.StorageSQLite) {
				logger.L.Warn("storage driver is not sqlite; migrating the configured path anyway",
					slog.String("driver", storage.Driver), slog.String("path", storage.Path))
			}
			return db.RunMigrate(logger.L, storage.Path, dbfs.MigrationsFS, "migrations", args[0], args[1:])
		},
	}
}
