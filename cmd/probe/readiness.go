package probe

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/handlers/common"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long:  `Checks the database responds.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return fmt.Errorf("failed to parse flag %s: %w", verboseFlag, err)
			}

			return readinessCmdFunc(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func readinessCmdFunc(cmd *cobra.Command, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	return command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		errs := common.ProbeReadiness(ctx, s.DB, s.Config.Management.ReadinessTimeout)
		return report(cmd, "readiness", errs, verbose)
	})
}
