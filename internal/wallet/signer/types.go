package signer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TransactionRequest describes a value transfer to be signed. GasPrice is the
// legacy gas price, or the fee cap when GasTipCap is set.
type TransactionRequest struct {
	To        string   // receiver, EIP-55 checksummed or single-case hex
	Value     *big.Int // wei
	GasLimit  uint64
	GasPrice  *big.Int // wei
	GasTipCap *big.Int // optional, switches to an EIP-1559 transaction
	Nonce     uint64
	ChainID   *big.Int
	Data      []byte // empty for plain transfers
}

// IsDynamicFee reports whether the request is signed as an EIP-1559
// transaction.
func (r *TransactionRequest) IsDynamicFee() bool {
	return r.GasTipCap != nil
}

// SignedTransaction is a signed, RLP encoded transaction ready for broadcast.
type SignedTransaction struct {
	Raw     []byte // typed envelope for EIP-1559, plain RLP list for legacy
	Hash    common.Hash
	From    common.Address
	ChainID *big.Int
	V       *big.Int
	R       *big.Int
	S       *big.Int
}

// RawHex returns the 0x prefixed hex of Raw.
func (t *SignedTransaction) RawHex() string {
	return hexutil.Encode(t.Raw)
}
