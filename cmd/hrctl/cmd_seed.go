package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zaer/hr-service/internal/repository"
	"github.com/zaer/hr-service/internal/seed"
	"github.com/zaer/hr-service/internal/service"
)

var (
	seedFile  string
	seedActor string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data and the organization tree from a YAML file",
	Long: `Creates the catalogs (designations, nationalities, countries, ...) and the
division > department > unit > section > sub-section tree listed in the file.
Records that already exist are left untouched, so the command can be re-run.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seeds/reference.yaml", "seed file")
	seedCmd.Flags().StringVar(&seedActor, "actor", uuid.Nil.String(), "uid recorded as creator")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if _, err := uuid.Parse(seedActor); err != nil {
		return fmt.Errorf("invalid --actor: %w", err)
	}
	f, err := seed.ParseFile(seedFile)
	if err != nil {
		return err
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	pool := e.pg.PoolHandle()
	seeder := seed.NewSeeder(
		service.NewLookupService(repository.NewLookupRepository(pool), nil, e.logger),
		service.NewOrgService(repository.NewOrgUnitRepository(pool), nil, e.logger),
		e.logger,
	)
	sum, err := seeder.Apply(cmd.Context(), seedActor, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %d, existing %d\n", sum.Created, sum.Existing)
	return nil
}
