//go:build wireinject

package api

import (
	"database/sql"

	"github.com/google/wire"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/store"
	"github/chapool/go-transfer/internal/wallet/network"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	store.NewService,
	NewMetrics,
	NewAccountService,
)

var networkSet = wire.NewSet(
	NewNetwork,
	wire.Bind(new(NetworkClient), new(*network.Client)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, networkSet, NewDB)
	return new(Server), nil
}

// InitNewServerWithDB returns a new Server instance with the given DB instance.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithDB(
	_ config.Server,
	_ *sql.DB,
) (*Server, error) {
	wire.Build(serviceSet, networkSet)
	return new(Server), nil
}

// InitNewServerWithDBAndNetwork returns a new Server instance with the given DB
// instance and network client. Tests use it to avoid dialing real nodes.
func InitNewServerWithDBAndNetwork(
	_ config.Server,
	_ *sql.DB,
	_ NetworkClient,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
