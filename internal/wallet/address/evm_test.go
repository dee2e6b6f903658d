package address_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/hdkey"
	"github/chapool/go-transfer/internal/wallet/seed"
	"github/chapool/go-transfer/internal/wallet/walleterr"
	"pgregory.net/rapid"
)

const (
	abandonAbout   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	abandonAddress = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
)

func TestFromPublicKeyKnownVector(t *testing.T) {
	s, err := seed.Derive(abandonAbout, "")
	require.NoError(t, err)
	defer s.Wipe()

	leaf, err := hdkey.DerivePath(s.Bytes(), hdkey.DefaultPath())
	require.NoError(t, err)
	defer leaf.Wipe()

	kp, err := leaf.KeyPair()
	require.NoError(t, err)
	defer kp.Wipe()

	addr := address.FromPublicKey(kp.Public)
	assert.Equal(t, abandonAddress, address.Checksum(addr))
	assert.Equal(t, crypto.PubkeyToAddress(*kp.Public), addr)
	assert.True(t, address.ValidateChecksum(address.Checksum(addr)))
}

func TestChecksumMatchesGethRendering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), address.Length, address.Length).Draw(t, "address")
		addr := common.BytesToAddress(raw)

		rendered := address.Checksum(addr)
		assert.Equal(t, addr.Hex(), rendered)
		assert.True(t, address.ValidateChecksum(rendered))

		parsed, err := address.Parse(rendered)
		require.NoError(t, err)
		assert.Equal(t, addr, parsed)
	})
}

func TestValidateChecksumRejectsSingleCaseFlip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), address.Length, address.Length).Draw(t, "address")
		rendered := address.Checksum(common.BytesToAddress(raw))

		var letters []int
		for i := 2; i < len(rendered); i++ {
			c := rendered[i]
			if (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
				letters = append(letters, i)
			}
		}

		lower := strings.ToLower(rendered[2:])
		upper := strings.ToUpper(rendered[2:])

		// an address with at most one letter cannot be mixed case after a flip
		if len(letters) < 2 {
			t.Skip("not enough letters")
		}

		pos := rapid.SampledFrom(letters).Draw(t, "position")
		flipped := []byte(rendered)
		if flipped[pos] >= 'a' {
			flipped[pos] -= 'a' - 'A'
		} else {
			flipped[pos] += 'a' - 'A'
		}

		if digits := string(flipped[2:]); digits == lower || digits == upper {
			t.Skip("flip produced a single-case address")
		}

		assert.False(t, address.ValidateChecksum(string(flipped)))
		_, err := address.Parse(string(flipped))
		require.ErrorIs(t, err, walleterr.ErrInvalidAddress)
	})
}

func TestValidateChecksum(t *testing.T) {
	valid := []string{
		abandonAddress,
		strings.TrimPrefix(abandonAddress, "0x"),
		strings.ToLower(abandonAddress),
		"0x" + strings.ToUpper(abandonAddress[2:]),
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, s := range valid {
		assert.True(t, address.ValidateChecksum(s), s)
	}

	invalid := []string{
		"",
		"0x",
		"0x9858EfFD232B4033E47d90003D41EC34EcaEda9",
		"0x9858EfFD232B4033E47d90003D41EC34EcaEda944",
		"0x9858EfFD232B4033E47d90003D41EC34EcaEda9g",
		"0x9858efFD232B4033E47d90003D41EC34EcaEda94",
		"9858EfFD232B4033E47d90003D41EC34EcaEda94 ",
	}
	for _, s := range invalid {
		assert.False(t, address.ValidateChecksum(s), s)
	}
}

func TestParse(t *testing.T) {
	addr, err := address.Parse(strings.ToLower(abandonAddress))
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(abandonAddress), addr)

	normalized, err := address.Normalize(strings.ToLower(abandonAddress))
	require.NoError(t, err)
	assert.Equal(t, abandonAddress, normalized)

	_, err = address.Parse("0xnot-an-address")
	require.ErrorIs(t, err, walleterr.ErrInvalidAddress)
	assert.Equal(t, walleterr.KindInvalidAddress, walleterr.KindOf(err))
}
