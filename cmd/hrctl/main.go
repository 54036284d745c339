package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/config"
	"github.com/zaer/hr-service/internal/observability"
	"github.com/zaer/hr-service/internal/persistence"
)

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "Administrative tasks for the HR service",
	Long: `hrctl runs maintenance tasks against the HR service database.

Configuration is read from the same environment variables (and .env file)
as the API server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, accountCmd, tokenCmd, severanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the configuration, logger and database pool shared by commands that
// talk to postgres.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	pg     *persistence.Postgres
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &env{cfg: cfg, logger: logger, pg: pg}, nil
}

func (e *env) Close() {
	e.pg.Close()
	_ = e.logger.Sync()
}
