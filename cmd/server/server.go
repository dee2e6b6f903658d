package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/router"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/store"
	"github/chapool/go-transfer/internal/util/command"
)

const (
	migrateFlag = "migrate"

	shutdownTimeout = 30 * time.Second
)

type Flags struct {
	ApplyMigrations bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the HTTP server serving the wallet and string store endpoints.

Requires configuration through ENV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.ApplyMigrations, migrateFlag, "m", false, "If the server should apply pending migrations before starting.")

	return cmd
}

func run(ctx context.Context, flags Flags) error {
	cfg := config.DefaultServiceConfigFromEnv()
	command.SetupLogger(cfg)

	log.Info().Msg("Starting server")

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if flags.ApplyMigrations {
		n, err := store.Migrate(ctx, s.DB)
		if err != nil {
			return err
		}

		log.Info().Int("count", n).Msg("Applied migrations")
	}

	if err := checkWallet(ctx, s); err != nil {
		return err
	}

	if err := router.Init(s); err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		return errors.Join(errs...)
	}

	return nil
}
