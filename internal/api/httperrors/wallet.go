package httperrors

import (
	"net/http"

	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

var walletErrorTitles = map[walleterr.Kind]string{
	walleterr.KindInvalidPhrase:             "Invalid seed phrase",
	walleterr.KindChecksumMismatch:          "Seed phrase checksum mismatch",
	walleterr.KindInvalidChildDerivation:    "Key derivation failed",
	walleterr.KindInvalidAddress:            "Invalid receiver address",
	walleterr.KindInvalidTransactionRequest: "Invalid transaction request",
	walleterr.KindSigningFailure:            "Failed to sign transaction",
	walleterr.KindNetworkUnavailable:        "Failed to connect to the network node",
}

// StatusForWalletKind returns the HTTP status code a wallet error kind is
// reported with.
func StatusForWalletKind(kind walleterr.Kind) int {
	switch {
	case kind.IsClientError():
		return http.StatusBadRequest
	case kind == walleterr.KindNetworkUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromWalletError converts a wallet error into its public HTTP error. It
// returns nil if err carries no wallet error kind. Only the detail of client
// errors is exposed; it never contains key material.
func FromWalletError(err error) *HTTPError {
	kind := walleterr.KindOf(err)
	if kind == "" {
		return nil
	}

	code := StatusForWalletKind(kind)

	title, ok := walletErrorTitles[kind]
	if !ok {
		title = http.StatusText(code)
	}

	var httpErr *HTTPError
	if kind.IsClientError() {
		httpErr = NewHTTPErrorWithDetail(code, types.PublicHTTPErrorType(kind), title, walleterr.DetailOf(err))
	} else {
		httpErr = NewHTTPError(code, types.PublicHTTPErrorType(kind), title)
	}

	httpErr.Internal = err

	return httpErr
}
