package wallet_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/test"
	"github/chapool/go-transfer/internal/test/mocks"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hexutil.Decode(s)
	require.NoError(t, err)

	return b
}

func TestPostAddress(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/address", test.GenericPayload{
			"secret_key": abandonAbout,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AddressResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, abandonAddress, *response.Address)
		assert.Equal(t, "m/44'/60'/0'/0/0", *response.DerivationPath)
		assert.True(t, strings.HasPrefix(response.ExtendedPublicKey, "xpub"))
		assert.Empty(t, network.Calls())
	})
}

func TestPostAddressConfiguredIndex(t *testing.T) {
	withWalletServer(t, func(cfg *config.Server) {
		cfg.Wallet.AddressIndex = 1
	}, func(s *api.Server, _ *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/address", test.GenericPayload{
			"secret_key": abandonAbout,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AddressResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "m/44'/60'/0'/0/1", *response.DerivationPath)
		assert.NotEqual(t, abandonAddress, *response.Address)
	})
}

func TestPostAddressPassphraseChangesAccount(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, _ *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/address", test.GenericPayload{
			"secret_key": abandonAbout,
			"passphrase": "TREZOR",
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AddressResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.NotEqual(t, abandonAddress, *response.Address)
	})
}

func TestPostAddressInvalidPhrase(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, _ *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/address", test.GenericPayload{
			"secret_key": "abandon abandon",
		}, nil)

		test.RequireHTTPError(t, res, httperrors.FromWalletError(walleterr.ErrInvalidPhrase))
	})
}
