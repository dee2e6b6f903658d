package api

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/metrics"
	"github/chapool/go-transfer/internal/wallet/account"
	"github/chapool/go-transfer/internal/wallet/network"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewDB opens the postgres connection pool and verifies it with a ping.
func NewDB(cfg config.Server) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.ReadinessTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

func NewMetrics(cfg config.Server, db *sql.DB) (*metrics.Service, error) {
	return metrics.New(cfg, db)
}

// NewNetwork dials the configured RPC nodes.
func NewNetwork(cfg config.Server) (*network.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Network.DialTimeout)
	defer cancel()

	client, err := network.Dial(ctx, cfg.Network.RPCURLs)
	if err != nil {
		return nil, err
	}

	log.Info().Strs("urls", client.URLs()).Msg("Connected to network")

	return client, nil
}

//nolint:ireturn
func NewAccountService(cfg config.Server, net NetworkClient) (account.Service, error) {
	return account.NewService(cfg.Wallet, net)
}
