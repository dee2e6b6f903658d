package account

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/chapool/go-transfer/internal/wallet/hdkey"
)

// AddressService resolves seed phrases to accounts.
type AddressService interface {
	// DeriveAddress resolves a phrase to its account without touching the
	// network.
	DeriveAddress(ctx context.Context, phrase, passphrase string) (*AddressResult, error)
}

// Service resolves seed phrases to accounts and signs transfers from them.
type Service interface {
	AddressService
	// Transfer signs a value transfer from the account of req.Phrase to
	// req.Receiver and broadcasts it if broadcasting is enabled.
	Transfer(ctx context.Context, req *TransferRequest) (*TransferResult, error)
}

// Network is the node the service reads transfer parameters from and
// submits transactions to.
type Network interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// TransferRequest carries secrets: never log it.
type TransferRequest struct {
	Phrase     string
	Passphrase string
	Receiver   string
	Value      *big.Int // wei, the configured transfer value if nil
}

type TransferResult struct {
	Message        string
	From           common.Address
	To             common.Address
	Value          *big.Int
	Nonce          uint64
	Broadcast      bool
	TxHash         string // set only if Broadcast
	RawTransaction string // 0x prefixed
}

type AddressResult struct {
	Address           common.Address
	Path              hdkey.Path
	ExtendedPublicKey string
}
