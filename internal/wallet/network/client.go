// Package network talks to EVM JSON-RPC nodes. A Client holds one connection
// per configured URL and fails over to the next URL when a node stops
// answering.
package network

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoURLs              = errors.New("at least one RPC URL is required")
	ErrAllNodesUnavailable = errors.New("all RPC nodes are unavailable")
)

// Client is safe for concurrent use.
type Client struct {
	urls []string

	mu      sync.RWMutex
	clients []*ethclient.Client
	current int
}

// Dial connects to every URL. URLs that cannot be dialed are retried lazily
// on use; Dial only fails if none of them could be dialed.
func Dial(ctx context.Context, urls []string) (*Client, error) {
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	c := &Client{
		urls:    append([]string(nil), urls...),
		clients: make([]*ethclient.Client, len(urls)),
	}

	connected := 0
	for i, url := range urls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			log.Warn().Str("url", url).Err(err).Msg("Failed to connect to RPC node, will retry on use")
			continue
		}

		c.clients[i] = client
		connected++
	}

	if connected == 0 {
		return nil, errors.Wrap(ErrAllNodesUnavailable, "failed to connect to any RPC node")
	}

	return c, nil
}

// Close closes all node connections.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, client := range c.clients {
		if client != nil {
			client.Close()
			c.clients[i] = nil
		}
	}
}

// URLs returns the configured node URLs.
func (c *Client) URLs() []string {
	return append([]string(nil), c.urls...)
}

// Ping succeeds if at least one node answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.getClient(ctx)
	return err
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get RPC client")
	}

	nonce, err := client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas price")
	}

	return price, nil
}

// SuggestGasTipCap suggests a priority fee for EIP-1559 transactions.
func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	tipCap, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// SendTransaction submits a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := c.getClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get RPC client")
	}

	if err := client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// getClient returns the first healthy node, starting at the one that
// answered last. Nodes that were never dialed are dialed again here.
func (c *Client) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.mu.RLock()
	start, n := c.current, len(c.clients)
	c.mu.RUnlock()

	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := (start + i) % n

		client, err := c.clientAt(ctx, idx)
		if err != nil {
			log.Warn().Str("url", c.urls[idx]).Err(err).Msg("Failed to reconnect to RPC node")
			continue
		}

		// cheapest call every node answers
		if _, err := client.ChainID(ctx); err != nil {
			log.Warn().Str("url", c.urls[idx]).Err(err).Msg("RPC node health check failed, trying next node")
			continue
		}

		if idx != start {
			c.mu.Lock()
			c.current = idx
			c.mu.Unlock()

			log.Info().Str("url", c.urls[idx]).Msg("Switched RPC node")
		}

		return client, nil
	}

	return nil, ErrAllNodesUnavailable
}

func (c *Client) clientAt(ctx context.Context, idx int) (*ethclient.Client, error) {
	c.mu.RLock()
	client := c.clients[idx]
	c.mu.RUnlock()

	if client != nil {
		return client, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] != nil {
		return c.clients[idx], nil
	}

	client, err := ethclient.DialContext(ctx, c.urls[idx])
	if err != nil {
		return nil, err
	}

	c.clients[idx] = client

	return client, nil
}
