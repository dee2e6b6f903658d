package config_test

import (
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestWalletDefaults(t *testing.T) {
	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, int64(56), cfg.Wallet.ChainID)
	assert.Equal(t, uint64(21000), cfg.Wallet.GasLimit)
	assert.Equal(t, 0, cfg.Wallet.TransferValue.Cmp(big.NewInt(5_000_000_000_000_000)))
	assert.False(t, cfg.Wallet.Broadcast)
	assert.Equal(t, uint32(60), cfg.Wallet.CoinType)
	assert.Empty(t, cfg.Wallet.DerivationPath)
	assert.NotEmpty(t, cfg.Network.RPCURLs)
}

func TestWalletFromEnv(t *testing.T) {
	t.Setenv("WALLET_CHAIN_ID", "97")
	t.Setenv("WALLET_TRANSFER_VALUE_WEI", "1000")
	t.Setenv("WALLET_BROADCAST", "true")
	t.Setenv("WALLET_NETWORK_TIMEOUT_SEC", "2")
	t.Setenv("NETWORK_RPC_URLS", "http://a:8545, http://b:8545")
	t.Setenv("WALLET_DERIVATION_PATH", "m/44'/60'/0'/0/7")

	cfg := config.DefaultServiceConfigFromEnv()

	assert.Equal(t, int64(97), cfg.Wallet.ChainID)
	assert.Equal(t, int64(1000), cfg.Wallet.TransferValue.Int64())
	assert.True(t, cfg.Wallet.Broadcast)
	assert.Equal(t, 2*time.Second, cfg.Wallet.NetworkTimeout)
	assert.Equal(t, []string{"http://a:8545", "http://b:8545"}, cfg.Network.RPCURLs)
	assert.Equal(t, "m/44'/60'/0'/0/7", cfg.Wallet.DerivationPath)
}

func TestDatabaseConnectionString(t *testing.T) {
	db := config.Database{
		Host:     "localhost",
		Port:     5432,
		Username: "user",
		Password: "secret",
		Database: "strings",
		AdditionalParams: map[string]string{
			"sslmode":          "require",
			"application_name": "transfer",
		},
	}

	assert.Equal(t, "host=localhost port=5432 user=user password=secret dbname=strings application_name=transfer sslmode=require", db.ConnectionString())

	db.AdditionalParams = nil
	assert.Equal(t, "host=localhost port=5432 user=user password=secret dbname=strings sslmode=disable", db.ConnectionString())
}

func TestDotEnvLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(file, []byte("WALLET_CHAIN_ID=1\nWALLET_GAS_LIMIT=30000\n"), 0o600))

	env := map[string]string{}
	err := config.DotEnvLoad(file, func(k, v string) error {
		env[k] = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"WALLET_CHAIN_ID": "1", "WALLET_GAS_LIMIT": "30000"}, env)

	err = config.DotEnvLoad(filepath.Join(t.TempDir(), "missing"), func(string, string) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}
