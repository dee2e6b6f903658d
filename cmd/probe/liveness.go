package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/handlers/common"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
)

var errProbeFailed = errors.New("probe failed")

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long:  `Checks the database and at least one network node respond.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return fmt.Errorf("failed to parse flag %s: %w", verboseFlag, err)
			}

			return livenessCmdFunc(cmd, verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func livenessCmdFunc(cmd *cobra.Command, verbose bool) error {
	cfg := config.DefaultServiceConfigFromEnv()

	return command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
		errs := common.ProbeLiveness(ctx, s.DB, s.Network, s.Config.Management.LivenessTimeout)
		return report(cmd, "liveness", errs, verbose)
	})
}

func report(cmd *cobra.Command, probe string, errs []string, verbose bool) error {
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}

		return fmt.Errorf("%s %w", probe, errProbeFailed)
	}

	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%s probe succeeded\n", probe)
	}

	return nil
}
