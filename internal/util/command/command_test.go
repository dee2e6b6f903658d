package command_test

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
)

func TestNewSubcommandGroup(t *testing.T) {
	var ran bool

	group := command.NewSubcommandGroup("wallet",
		&cobra.Command{Use: "address", RunE: func(*cobra.Command, []string) error {
			ran = true
			return nil
		}},
		&cobra.Command{Use: "transfer"},
	)

	assert.Equal(t, "wallet", group.Use)
	assert.Len(t, group.Commands(), 2)

	group.SetArgs([]string{"address"})
	require.NoError(t, group.Execute())
	assert.True(t, ran)
}

func TestWithServerInitFailure(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1
	cfg.Logger.PrettyPrintConsole = false

	called := false
	err := command.WithServer(t.Context(), cfg, func(context.Context, *api.Server) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
