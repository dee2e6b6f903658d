package wallet_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/test"
	"github/chapool/go-transfer/internal/test/mocks"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/wallet/account"
	"github/chapool/go-transfer/internal/wallet/signer"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

const (
	abandonAbout   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	abandonAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	receiver       = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func withWalletServer(t *testing.T, mutate func(*config.Server), closure func(s *api.Server, network *mocks.Network)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	if mutate != nil {
		mutate(&cfg)
	}

	network := mocks.NewNetwork()
	test.WithTestServerNoDB(t, cfg, network, func(s *api.Server) {
		closure(s, network)
	})
}

func TestPostTransferDryRun(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
			"secret_key":       abandonAbout,
			"receiver_address": receiver,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, account.MessageDryRun, *response.Message)
		assert.Equal(t, abandonAddress, *response.FromAddress)
		assert.False(t, *response.Broadcast)
		assert.Empty(t, response.TxHash)
		assert.True(t, strings.HasPrefix(response.RawTransaction, "0x"))
		assert.Empty(t, network.Sent())
	})
}

func TestPostTransferBroadcast(t *testing.T) {
	withWalletServer(t, func(cfg *config.Server) {
		cfg.Wallet.Broadcast = true
	}, func(s *api.Server, network *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/transfer_coin", test.GenericPayload{
			"secret_key":       abandonAbout,
			"receiver_address": receiver,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.TransferResponse
		test.ParseResponseAndValidate(t, res, &response)

		assert.Equal(t, "Transaction is successful", *response.Message)
		assert.True(t, *response.Broadcast)

		sent := network.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, sent[0].Hash().Hex(), response.TxHash)

		from, err := signer.Verify(mustDecodeHex(t, response.RawTransaction), sent[0].ChainId())
		require.NoError(t, err)
		assert.Equal(t, abandonAddress, from.Hex())
		assert.Equal(t, int64(56), sent[0].ChainId().Int64())
	})
}

func TestPostTransferValidation(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
			"receiver_address": receiver,
		}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response httperrors.HTTPValidationError
		test.ParseResponseBody(t, res, &response)
		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "secret_key", *response.ValidationErrors[0].Key)

		assert.Empty(t, network.Calls())
	})
}

func TestPostTransferMalformedReceiver(t *testing.T) {
	for _, malformed := range []string{
		"not an address",
		receiver[:len(receiver)-1],
		receiver + "a",
		"0xZZAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	} {
		t.Run(malformed, func(t *testing.T) {
			withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
				res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
					"secret_key":       abandonAbout,
					"receiver_address": malformed,
				}, nil)

				response := test.RequireHTTPError(t, res, httperrors.FromWalletError(walleterr.ErrInvalidAddress))
				assert.Equal(t, types.PublicHTTPErrorTypeINVALIDADDRESS, *response.Type)
				assert.Equal(t, http.StatusBadRequest, int(*response.Code))
				assert.Empty(t, network.Calls())
			})
		})
	}
}

func TestPostTransferWalletErrors(t *testing.T) {
	foreign := strings.Repeat("abandon ", 23) + "zebraxylophone"

	tests := []struct {
		name     string
		phrase   string
		receiver string
		kind     walleterr.Kind
		status   int
	}{
		{"flipped receiver case", abandonAbout, "0x5aaeb6053F3E94C9b9A09f33669435E7Ef1BeAed", walleterr.KindInvalidAddress, http.StatusBadRequest},
		{"foreign word", foreign, receiver, walleterr.KindInvalidPhrase, http.StatusBadRequest},
		{"bad checksum", strings.Repeat("abandon ", 11) + "abandon", receiver, walleterr.KindChecksumMismatch, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
				res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
					"secret_key":       tt.phrase,
					"receiver_address": tt.receiver,
				}, nil)

				response := test.RequireHTTPError(t, res, httperrors.FromWalletError(walleterr.New(tt.kind, "")))
				assert.Equal(t, tt.status, int(*response.Code))
				assert.NotContains(t, res.Body.String(), "abandon")
				assert.Empty(t, network.Calls())
			})
		})
	}
}

func TestPostTransferNetworkUnavailable(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, network *mocks.Network) {
		network.NonceErr = errors.New("connection refused")

		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
			"secret_key":       abandonAbout,
			"receiver_address": receiver,
		}, nil)

		response := test.RequireHTTPError(t, res, httperrors.FromWalletError(walleterr.ErrNetworkUnavailable))
		assert.Equal(t, http.StatusServiceUnavailable, int(*response.Code))
		assert.NotContains(t, res.Body.String(), "connection refused")
	})
}

func TestPostTransferCountsMetrics(t *testing.T) {
	withWalletServer(t, nil, func(s *api.Server, _ *mocks.Network) {
		res := test.PerformRequest(t, s, http.MethodPost, "/api/v1/wallet/transfer", test.GenericPayload{
			"secret_key":       abandonAbout,
			"receiver_address": receiver,
		}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, http.MethodGet, "/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), `transfer_transfers_total{kind="",outcome="signed"} 1`)
	})
}
