package server

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/wallet/account"
)

type chainIDer interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// checkWallet logs the effective wallet configuration and makes sure the
// configured chain id matches the one reported by the network.
func checkWallet(ctx context.Context, s *api.Server) error {
	cfg := s.Config.Wallet
	path, err := account.DerivationPath(cfg)
	if err != nil {
		return err
	}

	log.Info().
		Str("path", path.String()).
		Int64("chain_id", cfg.ChainID).
		Uint64("gas_limit", cfg.GasLimit).
		Str("transfer_value_wei", cfg.TransferValue.String()).
		Bool("broadcast", cfg.Broadcast).
		Bool("dynamic_fee", cfg.DynamicFee).
		Msg("Wallet configured")

	if !cfg.Broadcast {
		log.Warn().Msg("Broadcasting is disabled, transfers are signed but never sent")
	}

	network, ok := s.Network.(chainIDer)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.NetworkTimeout)
	defer cancel()

	chainID, err := network.ChainID(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to query network chain id")
		return nil
	}

	if chainID.Cmp(big.NewInt(cfg.ChainID)) != 0 {
		return errors.Errorf("configured chain id %d does not match network chain id %s", cfg.ChainID, chainID)
	}

	return nil
}
