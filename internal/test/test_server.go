package test

import (
	"context"
	"database/sql"
	"testing"

	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/router"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/test/mocks"
)

// WithTestServer returns a fully configured server (inkl. an isolated database
// and a mocked network node) for the duration of the test.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	WithTestDatabase(t, func(db *sql.DB) {
		t.Helper()

		execClosureNewTestServer(t, config, db, mocks.NewNetwork(), closure)
	})
}

// WithTestServerNoDB runs closure against a server without a database. Only
// the wallet endpoints are usable.
func WithTestServerNoDB(t *testing.T, config config.Server, network *mocks.Network, closure func(s *api.Server)) {
	t.Helper()

	execClosureNewTestServer(t, config, nil, network, closure)
}

func execClosureNewTestServer(t *testing.T, config config.Server, db *sql.DB, network *mocks.Network, closure func(s *api.Server)) {
	t.Helper()

	// https://stackoverflow.com/questions/43424787/how-to-use-next-available-port-in-http-listenandserve
	// You may use port 0 to indicate you're not specifying an exact port but you want a free, available port selected by the system
	config.Echo.ListenAddress = ":0"

	s, err := api.InitNewServerWithDBAndNetwork(config, db, network)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	closure(s)

	// echo is managed and should close automatically after running the test
	if err := s.Echo.Shutdown(context.Background()); err != nil {
		t.Fatalf("failed to shutdown server: %v", err)
	}

	// disallow any further refs to managed object after running the test
	//nolint:wastedassign
	s = nil
}
