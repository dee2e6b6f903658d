// Package signer assembles and signs EVM value transfers. Legacy requests are
// signed with EIP-155 replay protection, requests carrying a tip cap are
// signed as EIP-1559 transactions. Nothing in this package broadcasts.
package signer

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

// Sign validates req, signs it with key for req.ChainID and returns the
// encoded transaction. key is neither retained nor modified.
func Sign(req *TransactionRequest, key *ecdsa.PrivateKey) (*SignedTransaction, error) {
	to, err := validate(req)
	if err != nil {
		return nil, err
	}

	if key == nil || key.D == nil {
		return nil, walleterr.New(walleterr.KindSigningFailure, "no signing key")
	}

	tx, txSigner := build(req, to)

	signed, err := types.SignTx(tx, txSigner, key)
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindSigningFailure, "failed to sign transaction")
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindSigningFailure, "failed to encode transaction")
	}

	v, r, s := signed.RawSignatureValues()

	return &SignedTransaction{
		Raw:     raw,
		Hash:    signed.Hash(),
		From:    address.FromPublicKey(&key.PublicKey),
		ChainID: new(big.Int).Set(req.ChainID),
		V:       v,
		R:       r,
		S:       s,
	}, nil
}

// Decode parses a raw transaction as produced by Sign.
func Decode(raw []byte) (*types.Transaction, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindInvalidTransactionRequest, "failed to decode transaction")
	}

	return tx, nil
}

// Verify decodes raw and recovers its sender under chainID. Transactions
// signed for another chain, or without replay protection, are rejected.
func Verify(raw []byte, chainID *big.Int) (common.Address, error) {
	if chainID == nil || chainID.Sign() <= 0 {
		return common.Address{}, walleterr.New(walleterr.KindInvalidTransactionRequest, "chain id must be positive")
	}

	tx, err := Decode(raw)
	if err != nil {
		return common.Address{}, err
	}

	if !tx.Protected() {
		return common.Address{}, walleterr.New(walleterr.KindInvalidTransactionRequest, "transaction is not replay protected")
	}

	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return common.Address{}, walleterr.Wrap(err, walleterr.KindInvalidTransactionRequest, "failed to recover sender")
	}

	return from, nil
}

//nolint:ireturn
func build(req *TransactionRequest, to common.Address) (*types.Transaction, types.Signer) {
	chainID := new(big.Int).Set(req.ChainID)

	if req.IsDynamicFee() {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     req.Nonce,
			GasTipCap: new(big.Int).Set(req.GasTipCap),
			GasFeeCap: new(big.Int).Set(req.GasPrice),
			Gas:       req.GasLimit,
			To:        &to,
			Value:     new(big.Int).Set(req.Value),
			Data:      common.CopyBytes(req.Data),
		}), types.NewLondonSigner(chainID)
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: new(big.Int).Set(req.GasPrice),
		Gas:      req.GasLimit,
		To:       &to,
		Value:    new(big.Int).Set(req.Value),
		Data:     common.CopyBytes(req.Data),
	}), types.NewEIP155Signer(chainID)
}

func validate(req *TransactionRequest) (common.Address, error) {
	if req == nil {
		return common.Address{}, walleterr.New(walleterr.KindInvalidTransactionRequest, "missing request")
	}

	to, err := address.Parse(req.To)
	if err != nil {
		return common.Address{}, err
	}

	switch {
	case req.Value == nil || req.Value.Sign() < 0:
		return common.Address{}, invalid("value must be a non-negative amount")
	case req.GasLimit == 0:
		return common.Address{}, invalid("gas limit must be positive")
	case req.GasPrice == nil || req.GasPrice.Sign() < 0:
		return common.Address{}, invalid("gas price must be a non-negative amount")
	case req.ChainID == nil || req.ChainID.Sign() <= 0:
		return common.Address{}, invalid("chain id must be positive")
	case req.GasTipCap != nil && req.GasTipCap.Sign() < 0:
		return common.Address{}, invalid("gas tip cap must be a non-negative amount")
	case req.GasTipCap != nil && req.GasTipCap.Cmp(req.GasPrice) > 0:
		return common.Address{}, invalid("gas tip cap exceeds fee cap")
	}

	return to, nil
}

func invalid(detail string) error {
	return walleterr.New(walleterr.KindInvalidTransactionRequest, detail)
}
