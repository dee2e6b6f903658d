package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/store"
	"github/chapool/go-transfer/internal/util/command"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Executes all pending database migrations",
		Long:  `Executes all pending database migrations embedded into the binary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrateCmdFunc(cmd.Context())
		},
	}
}

func migrateCmdFunc(ctx context.Context) error {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	db, err := api.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	n, err := store.Migrate(ctx, db)
	if err != nil {
		return err
	}

	log.Info().Int("count", n).Msg("Applied migrations")

	return nil
}
