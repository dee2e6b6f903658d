package signer_test

import (
	"bytes"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/signer"
	"github/chapool/go-transfer/internal/wallet/walleterr"
	"pgregory.net/rapid"
)

// Example transaction from the EIP-155 document.
const (
	eip155Raw  = "0xf86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a76400008025a028ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276a067cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83"
	eip155Hash = "0xdaf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53"
	eip155To   = "0x3535353535353535353535353535353535353535"
)

func eip155Key(t require.TestingT) *ecdsa.PrivateKey {
	key, err := crypto.ToECDSA(bytes.Repeat([]byte{0x46}, 32))
	require.NoError(t, err)

	return key
}

func eip155Request() *signer.TransactionRequest {
	return &signer.TransactionRequest{
		To:       eip155To,
		Value:    big.NewInt(1_000_000_000_000_000_000),
		GasLimit: 21000,
		GasPrice: big.NewInt(20_000_000_000),
		Nonce:    9,
		ChainID:  big.NewInt(1),
	}
}

func TestSignEIP155Vector(t *testing.T) {
	key := eip155Key(t)

	signed, err := signer.Sign(eip155Request(), key)
	require.NoError(t, err)

	assert.Equal(t, eip155Raw, signed.RawHex())
	assert.Equal(t, big.NewInt(37), signed.V)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signed.From)
	assert.Equal(t, 0, signed.ChainID.Cmp(big.NewInt(1)))

	tx, err := signer.Decode(signed.Raw)
	require.NoError(t, err)
	assert.Equal(t, signed.Hash, tx.Hash())
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, eip155Hash, types.NewEIP155Signer(big.NewInt(1)).Hash(tx).Hex())
}

func TestSignatureRecoversSender(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, "key")
		key, err := crypto.ToECDSA(raw)
		if err != nil {
			t.Skip("not a valid scalar")
		}

		to := rapid.SliceOfN(rapid.Byte(), address.Length, address.Length).Draw(t, "to")
		req := &signer.TransactionRequest{
			To:       address.Checksum(common.BytesToAddress(to)),
			Value:    new(big.Int).SetUint64(rapid.Uint64().Draw(t, "value")),
			GasLimit: rapid.Uint64Range(21000, 1_000_000).Draw(t, "gas"),
			GasPrice: new(big.Int).SetUint64(rapid.Uint64().Draw(t, "gasPrice")),
			Nonce:    rapid.Uint64().Draw(t, "nonce"),
			ChainID:  big.NewInt(rapid.Int64Range(1, 1<<32).Draw(t, "chainID")),
		}

		signed, err := signer.Sign(req, key)
		require.NoError(t, err)

		tx, err := signer.Decode(signed.Raw)
		require.NoError(t, err)
		hash := types.NewEIP155Signer(req.ChainID).Hash(tx)

		// v = recid + 2*chainId + 35
		base := new(big.Int).Add(new(big.Int).Lsh(req.ChainID, 1), big.NewInt(35))
		recID := new(big.Int).Sub(signed.V, base)
		require.True(t, recID.Sign() >= 0 && recID.Cmp(big.NewInt(1)) <= 0, "v out of range: %s", signed.V)

		sig := make([]byte, crypto.SignatureLength)
		signed.R.FillBytes(sig[:32])
		signed.S.FillBytes(sig[32:64])
		sig[64] = byte(recID.Uint64())

		pub, err := crypto.SigToPub(hash.Bytes(), sig)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*pub))

		from, err := signer.Verify(signed.Raw, req.ChainID)
		require.NoError(t, err)
		assert.Equal(t, signed.From, from)
	})
}

func TestReplayIsolation(t *testing.T) {
	req := eip155Request()
	req.ChainID = big.NewInt(56)

	signed, err := signer.Sign(req, eip155Key(t))
	require.NoError(t, err)

	from, err := signer.Verify(signed.Raw, big.NewInt(56))
	require.NoError(t, err)
	assert.Equal(t, signed.From, from)

	_, err = signer.Verify(signed.Raw, big.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidChainId)
	require.ErrorIs(t, err, walleterr.ErrInvalidTransactionRequest)

	// the same request signed for chain 1 produces a different signature
	req.ChainID = big.NewInt(1)
	other, err := signer.Sign(req, eip155Key(t))
	require.NoError(t, err)
	assert.NotEqual(t, signed.Raw, other.Raw)
	assert.NotEqual(t, signed.Hash, other.Hash)
}

func TestVerifyRejectsUnprotected(t *testing.T) {
	req := eip155Request()
	to := common.HexToAddress(req.To)

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: req.GasPrice,
		Gas:      req.GasLimit,
		To:       &to,
		Value:    req.Value,
	}), types.HomesteadSigner{}, eip155Key(t))
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	_, err = signer.Verify(raw, big.NewInt(1))
	require.ErrorIs(t, err, walleterr.ErrInvalidTransactionRequest)

	_, err = signer.Verify([]byte{0xde, 0xad}, big.NewInt(1))
	require.ErrorIs(t, err, walleterr.ErrInvalidTransactionRequest)

	_, err = signer.Verify(hexutil.MustDecode(eip155Raw), nil)
	require.ErrorIs(t, err, walleterr.ErrInvalidTransactionRequest)
}

func TestSignDynamicFee(t *testing.T) {
	req := eip155Request()
	req.ChainID = big.NewInt(56)
	req.GasTipCap = big.NewInt(1_000_000_000)

	signed, err := signer.Sign(req, eip155Key(t))
	require.NoError(t, err)
	assert.Equal(t, byte(types.DynamicFeeTxType), signed.Raw[0])

	tx, err := signer.Decode(signed.Raw)
	require.NoError(t, err)
	assert.Equal(t, 0, tx.GasTipCap().Cmp(req.GasTipCap))
	assert.Equal(t, 0, tx.GasFeeCap().Cmp(req.GasPrice))

	from, err := signer.Verify(signed.Raw, big.NewInt(56))
	require.NoError(t, err)
	assert.Equal(t, signed.From, from)

	_, err = signer.Verify(signed.Raw, big.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidChainId)
}

func TestSignValidation(t *testing.T) {
	key := eip155Key(t)

	tests := []struct {
		name   string
		mutate func(*signer.TransactionRequest)
		kind   walleterr.Kind
	}{
		{"flipped receiver case", func(r *signer.TransactionRequest) { r.To = "0x9858efFD232B4033E47d90003D41EC34EcaEda94" }, walleterr.KindInvalidAddress},
		{"short receiver", func(r *signer.TransactionRequest) { r.To = "0x3535" }, walleterr.KindInvalidAddress},
		{"nil value", func(r *signer.TransactionRequest) { r.Value = nil }, walleterr.KindInvalidTransactionRequest},
		{"negative value", func(r *signer.TransactionRequest) { r.Value = big.NewInt(-1) }, walleterr.KindInvalidTransactionRequest},
		{"zero gas", func(r *signer.TransactionRequest) { r.GasLimit = 0 }, walleterr.KindInvalidTransactionRequest},
		{"nil gas price", func(r *signer.TransactionRequest) { r.GasPrice = nil }, walleterr.KindInvalidTransactionRequest},
		{"zero chain", func(r *signer.TransactionRequest) { r.ChainID = big.NewInt(0) }, walleterr.KindInvalidTransactionRequest},
		{"nil chain", func(r *signer.TransactionRequest) { r.ChainID = nil }, walleterr.KindInvalidTransactionRequest},
		{"tip above cap", func(r *signer.TransactionRequest) { r.GasTipCap = new(big.Int).Add(r.GasPrice, big.NewInt(1)) }, walleterr.KindInvalidTransactionRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := eip155Request()
			tt.mutate(req)

			signed, err := signer.Sign(req, key)
			require.Nil(t, signed)
			require.Error(t, err)
			assert.Equal(t, tt.kind, walleterr.KindOf(err))
		})
	}

	_, err := signer.Sign(nil, key)
	assert.Equal(t, walleterr.KindInvalidTransactionRequest, walleterr.KindOf(err))

	_, err = signer.Sign(eip155Request(), nil)
	assert.Equal(t, walleterr.KindSigningFailure, walleterr.KindOf(err))
}

func TestSignAcceptsSingleCaseReceiver(t *testing.T) {
	req := eip155Request()
	req.To = strings.ToUpper(req.To[2:])

	signed, err := signer.Sign(req, eip155Key(t))
	require.NoError(t, err)
	assert.Equal(t, eip155Raw, signed.RawHex())
}
