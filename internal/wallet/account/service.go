// Package account ties the wallet packages together: it turns a seed phrase
// into the configured account, asks the network for nonce and fees, signs
// the transfer and optionally broadcasts it.
package account

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/hdkey"
	"github/chapool/go-transfer/internal/wallet/seed"
	"github/chapool/go-transfer/internal/wallet/signer"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

const (
	MessageBroadcast = "Transaction is successful"
	MessageDryRun    = "Transaction signed, broadcasting is disabled"
)

type service struct {
	*addressService

	cfg     config.Wallet
	network Network
}

type addressService struct {
	path hdkey.Path
}

// DerivationPath returns the account path of cfg: DerivationPath when set,
// the BIP-44 path built from the coin type, account, change and index
// otherwise. Only Ethereum shaped paths are accepted.
func DerivationPath(cfg config.Wallet) (hdkey.Path, error) {
	path := hdkey.EthereumPath(cfg.CoinType, cfg.Account, cfg.Change, cfg.AddressIndex)

	if cfg.DerivationPath != "" {
		parsed, err := hdkey.ParsePath(cfg.DerivationPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid derivation path")
		}

		path = parsed
	}

	if err := path.ValidateEthereum(); err != nil {
		return nil, errors.Wrap(err, "invalid derivation path")
	}

	return path, nil
}

// NewAddressService returns an AddressService for the account path of cfg.
// It never talks to a network.
//
//nolint:ireturn
func NewAddressService(cfg config.Wallet) (AddressService, error) {
	return newAddressService(cfg)
}

func newAddressService(cfg config.Wallet) (*addressService, error) {
	path, err := DerivationPath(cfg)
	if err != nil {
		return nil, err
	}

	return &addressService{path: path}, nil
}

// NewService validates cfg and returns a Service using network for nonce,
// fee and broadcast calls.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Wallet, network Network) (Service, error) {
	if network == nil {
		return nil, errors.New("network is required")
	}

	addresses, err := newAddressService(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.ChainID <= 0 {
		return nil, errors.Errorf("invalid chain id %d", cfg.ChainID)
	}

	if cfg.GasLimit == 0 {
		return nil, errors.New("gas limit must be positive")
	}

	if cfg.TransferValue == nil || cfg.TransferValue.Sign() < 0 {
		return nil, errors.New("transfer value must be a non-negative amount")
	}

	return &service{
		addressService: addresses,
		cfg:            cfg,
		network:        network,
	}, nil
}

func (s *service) Transfer(ctx context.Context, req *TransferRequest) (*TransferResult, error) {
	log := util.LogFromContext(ctx)

	if req == nil {
		return nil, walleterr.New(walleterr.KindInvalidTransactionRequest, "missing request")
	}

	// the receiver is checked before any key material exists
	to, err := address.Parse(req.Receiver)
	if err != nil {
		return nil, err
	}

	value := s.cfg.TransferValue
	if req.Value != nil {
		value = req.Value
	}

	if value.Sign() < 0 {
		return nil, walleterr.New(walleterr.KindInvalidTransactionRequest, "value must be a non-negative amount")
	}

	keyPair, err := s.accountKey(req.Phrase, req.Passphrase)
	if err != nil {
		return nil, err
	}
	defer keyPair.Wipe()

	from := address.FromPublicKey(keyPair.Public)

	txReq := &signer.TransactionRequest{
		To:       address.Checksum(to),
		Value:    new(big.Int).Set(value),
		GasLimit: s.cfg.GasLimit,
		ChainID:  big.NewInt(s.cfg.ChainID),
	}

	if err := s.fillFromNetwork(ctx, from, txReq); err != nil {
		return nil, err
	}

	signed, err := signer.Sign(txReq, keyPair.Private)
	keyPair.Wipe()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("from", address.Checksum(from)).
		Str("to", txReq.To).
		Uint64("nonce", txReq.Nonce).
		Str("value", txReq.Value.String()).
		Int64("chain_id", s.cfg.ChainID).
		Msg("Signed transfer")

	result := &TransferResult{
		Message:        MessageDryRun,
		From:           from,
		To:             to,
		Value:          txReq.Value,
		Nonce:          txReq.Nonce,
		RawTransaction: signed.RawHex(),
	}

	if !s.cfg.Broadcast {
		return result, nil
	}

	tx, err := signer.Decode(signed.Raw)
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindSigningFailure, "failed to decode signed transaction")
	}

	sendCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.network.SendTransaction(sendCtx, tx); err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindNetworkUnavailable, "failed to broadcast transaction")
	}

	log.Info().Str("tx_hash", signed.Hash.Hex()).Str("from", address.Checksum(from)).Msg("Broadcast transfer")

	result.Message = MessageBroadcast
	result.Broadcast = true
	result.TxHash = signed.Hash.Hex()

	return result, nil
}

func (s *addressService) DeriveAddress(_ context.Context, phrase, passphrase string) (*AddressResult, error) {
	leaf, err := s.deriveLeaf(phrase, passphrase)
	if err != nil {
		return nil, err
	}
	defer leaf.Wipe()

	pub := leaf.Public()

	ecdsaPub, err := pub.ECDSA()
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindInvalidChildDerivation, "failed to load account key")
	}

	return &AddressResult{
		Address:           address.FromPublicKey(ecdsaPub),
		Path:              append(hdkey.Path(nil), s.path...),
		ExtendedPublicKey: pub.String(),
	}, nil
}

// deriveLeaf wipes the seed before returning; the caller owns the leaf.
func (s *addressService) deriveLeaf(phrase, passphrase string) (*hdkey.ExtendedKey, error) {
	sd, err := seed.Derive(phrase, passphrase)
	if err != nil {
		return nil, err
	}
	defer sd.Wipe()

	return hdkey.DerivePath(sd.Bytes(), s.path)
}

// accountKey returns the signing key of the account. The leaf is wiped
// before returning, the caller owns and wipes the key pair.
func (s *addressService) accountKey(phrase, passphrase string) (*hdkey.KeyPair, error) {
	leaf, err := s.deriveLeaf(phrase, passphrase)
	if err != nil {
		return nil, err
	}
	defer leaf.Wipe()

	keyPair, err := leaf.KeyPair()
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindInvalidChildDerivation, "failed to load account key")
	}

	return keyPair, nil
}

func (s *service) fillFromNetwork(ctx context.Context, from common.Address, req *signer.TransactionRequest) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	nonce, err := s.network.PendingNonceAt(ctx, from)
	if err != nil {
		return walleterr.Wrap(err, walleterr.KindNetworkUnavailable, "failed to fetch nonce")
	}

	gasPrice, err := s.network.SuggestGasPrice(ctx)
	if err != nil {
		return walleterr.Wrap(err, walleterr.KindNetworkUnavailable, "failed to fetch gas price")
	}

	req.Nonce = nonce
	req.GasPrice = gasPrice

	if !s.cfg.DynamicFee {
		return nil
	}

	tipCap, err := s.network.SuggestGasTipCap(ctx)
	if err != nil {
		return walleterr.Wrap(err, walleterr.KindNetworkUnavailable, "failed to fetch gas tip cap")
	}

	// fee cap: twice the current price plus the tip
	req.GasPrice = new(big.Int).Add(new(big.Int).Mul(gasPrice, big.NewInt(2)), tipCap)
	req.GasTipCap = tipCap

	return nil
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.NetworkTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.cfg.NetworkTimeout)
}
