package main

import (
	"github.com/spf13/cobra"

	"github.com/zaer/hr-service/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()
		return persistence.RunMigrations(cmd.Context(), e.pg.PoolHandle(), e.cfg.Postgres.MigrationsDir, e.logger)
	},
}
