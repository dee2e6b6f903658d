package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/config"
)

const (
	// shutdownTimeout bounds the graceful shutdown of the server
	shutdownTimeout = 30 * time.Second
)

// NewSubcommandGroup creates a command that only groups its subcommands.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("%s related subcommands", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}

// SetupLogger configures the global zerolog logger.
func SetupLogger(cfg config.Server) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
			w.Out = os.Stderr
		}))
	}

	if cfg.Logger.LogCaller {
		log.Logger = log.With().Caller().Logger()
	}
}

// WithServer initializes a server from cfg, runs f and shuts the server down
// again. The server's HTTP listener is never started.
func WithServer(ctx context.Context, cfg config.Server, f func(ctx context.Context, s *api.Server) error) error {
	SetupLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
			log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
		}
	}()

	return f(ctx, s)
}
