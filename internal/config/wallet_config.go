package config

import (
	"math/big"
	"time"
)

// Wallet configures which account a phrase is resolved to and how its
// transfers are assembled.
type Wallet struct {
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
	// DerivationPath overrides the path built from the fields above,
	// e.g. "m/44'/60'/0'/0/3".
	DerivationPath string

	ChainID       int64
	GasLimit      uint64
	TransferValue *big.Int // wei

	// Broadcast submits signed transfers. When false transfers are signed
	// but never sent.
	Broadcast bool
	// DynamicFee signs EIP-1559 transactions instead of legacy EIP-155 ones.
	DynamicFee bool

	NetworkTimeout time.Duration
}

// Network lists the JSON-RPC nodes of the configured chain in failover
// order.
type Network struct {
	RPCURLs     []string
	DialTimeout time.Duration
}
