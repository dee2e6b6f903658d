package walleterr_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

func TestIsMatchesByKind(t *testing.T) {
	err := walleterr.New(walleterr.KindInvalidAddress, "receiver checksum mismatch")

	assert.ErrorIs(t, err, walleterr.ErrInvalidAddress)
	assert.NotErrorIs(t, err, walleterr.ErrInvalidPhrase)
}

func TestKindSurvivesWrapping(t *testing.T) {
	base := walleterr.Wrap(io.ErrUnexpectedEOF, walleterr.KindNetworkUnavailable, "nonce lookup")
	wrapped := errors.Wrap(fmt.Errorf("transfer: %w", base), "outer")

	assert.ErrorIs(t, wrapped, walleterr.ErrNetworkUnavailable)
	assert.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)
	assert.Equal(t, walleterr.KindNetworkUnavailable, walleterr.KindOf(wrapped))
	assert.Equal(t, "nonce lookup", walleterr.DetailOf(wrapped))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, walleterr.Wrap(nil, walleterr.KindSigningFailure, "unused"))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, walleterr.Kind(""), walleterr.KindOf(io.EOF))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "INVALID_PHRASE", walleterr.ErrInvalidPhrase.Error())
	assert.Equal(t, "INVALID_PHRASE: word 3 is not in the wordlist",
		walleterr.Newf(walleterr.KindInvalidPhrase, "word %d is not in the wordlist", 3).Error())
	assert.Equal(t, "SIGNING_FAILURE: sign: EOF",
		walleterr.Wrap(io.EOF, walleterr.KindSigningFailure, "sign").Error())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, walleterr.KindInvalidPhrase.IsClientError())
	assert.True(t, walleterr.KindChecksumMismatch.IsClientError())
	assert.True(t, walleterr.KindInvalidAddress.IsClientError())
	assert.True(t, walleterr.KindInvalidTransactionRequest.IsClientError())
	assert.False(t, walleterr.KindInvalidChildDerivation.IsClientError())
	assert.False(t, walleterr.KindSigningFailure.IsClientError())
	assert.False(t, walleterr.KindNetworkUnavailable.IsClientError())
}
