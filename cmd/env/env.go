package env

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

Secrets are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := json.MarshalIndent(config.DefaultServiceConfigFromEnv(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(c))

			return nil
		},
	}
}
