// Package mocks holds in-memory stand-ins for external collaborators.
package mocks

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Network records every call and answers with its configured values. Set
// one of the *Err fields to make the respective call fail. With Block set
// every call waits for its context to be done.
type Network struct {
	Nonce    uint64
	GasPrice *big.Int
	TipCap   *big.Int

	NonceErr    error
	GasPriceErr error
	TipCapErr   error
	SendErr     error
	PingErr     error
	Block       bool

	mu    sync.Mutex
	calls []string
	sent  []*types.Transaction
}

func NewNetwork() *Network {
	return &Network{
		Nonce:    0,
		GasPrice: big.NewInt(5_000_000_000),
		TipCap:   big.NewInt(1_000_000_000),
	}
}

func (n *Network) PendingNonceAt(ctx context.Context, _ common.Address) (uint64, error) {
	if err := n.record(ctx, "PendingNonceAt"); err != nil {
		return 0, err
	}

	return n.Nonce, n.NonceErr
}

func (n *Network) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if err := n.record(ctx, "SuggestGasPrice"); err != nil {
		return nil, err
	}

	if n.GasPriceErr != nil {
		return nil, n.GasPriceErr
	}

	return new(big.Int).Set(n.GasPrice), nil
}

func (n *Network) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if err := n.record(ctx, "SuggestGasTipCap"); err != nil {
		return nil, err
	}

	if n.TipCapErr != nil {
		return nil, n.TipCapErr
	}

	return new(big.Int).Set(n.TipCap), nil
}

func (n *Network) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := n.record(ctx, "SendTransaction"); err != nil {
		return err
	}

	if n.SendErr != nil {
		return n.SendErr
	}

	n.mu.Lock()
	n.sent = append(n.sent, tx)
	n.mu.Unlock()

	return nil
}

func (n *Network) Ping(ctx context.Context) error {
	if err := n.record(ctx, "Ping"); err != nil {
		return err
	}

	return n.PingErr
}

// Calls returns the names of all calls made so far.
func (n *Network) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.calls...)
}

// Sent returns every successfully submitted transaction.
func (n *Network) Sent() []*types.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]*types.Transaction(nil), n.sent...)
}

func (n *Network) record(ctx context.Context, call string) error {
	n.mu.Lock()
	n.calls = append(n.calls, call)
	n.mu.Unlock()

	if n.Block {
		<-ctx.Done()
		return ctx.Err()
	}

	return nil
}
