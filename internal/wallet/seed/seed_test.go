package seed_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/wallet/seed"
	"github/chapool/go-transfer/internal/wallet/walleterr"
	"pgregory.net/rapid"
)

const (
	abandonAbout  = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	abandonAbout0 = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	abandonTrezor = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
)

func abandonArt() string {
	return strings.Repeat("abandon ", 23) + "art"
}

func TestDeriveKnownVector(t *testing.T) {
	s, err := seed.Derive(abandonAbout, "")
	require.NoError(t, err)
	defer s.Wipe()

	assert.Len(t, s.Bytes(), seed.Size)
	assert.Equal(t, abandonAbout0, hex.EncodeToString(s.Bytes()))
}

func TestDeriveWithPassphrase(t *testing.T) {
	s, err := seed.Derive(abandonAbout, "TREZOR")
	require.NoError(t, err)
	defer s.Wipe()

	assert.Equal(t, abandonTrezor, hex.EncodeToString(s.Bytes()))
}

func TestDeriveNormalizesWhitespace(t *testing.T) {
	messy := "  " + strings.ReplaceAll(abandonAbout, " ", " \t ") + "\n"

	s, err := seed.Derive(messy, "")
	require.NoError(t, err)
	defer s.Wipe()

	assert.Equal(t, abandonAbout0, hex.EncodeToString(s.Bytes()))
}

func TestDeriveInvalidWordCount(t *testing.T) {
	words := strings.Fields(abandonAbout)

	_, err := seed.Derive(strings.Join(words[:11], " "), "")
	require.ErrorIs(t, err, walleterr.ErrInvalidPhrase)

	_, err = seed.Derive("", "")
	require.ErrorIs(t, err, walleterr.ErrInvalidPhrase)
}

func TestDeriveUnknownWordIn24WordPhrase(t *testing.T) {
	words := strings.Fields(abandonArt())
	require.NoError(t, seed.Validate(abandonArt()))

	words[7] = "blockchainz"
	_, err := seed.Derive(strings.Join(words, " "), "")
	require.ErrorIs(t, err, walleterr.ErrInvalidPhrase)
	assert.Equal(t, "word 8 is not in the wordlist", walleterr.DetailOf(err))
	assert.NotContains(t, err.Error(), "blockchainz")
}

func TestDeriveChecksumMismatch(t *testing.T) {
	_, err := seed.Derive(strings.Repeat("abandon ", 12), "")
	require.ErrorIs(t, err, walleterr.ErrChecksumMismatch)
	assert.NotErrorIs(t, err, walleterr.ErrInvalidPhrase)
}

func TestWipe(t *testing.T) {
	s, err := seed.Derive(abandonAbout, "")
	require.NoError(t, err)

	b := s.Bytes()
	s.Wipe()

	assert.Equal(t, make([]byte, seed.Size), b)
	assert.Nil(t, s.Bytes())

	var nilSeed *seed.Seed
	nilSeed.Wipe()
}

func TestNewPhrase(t *testing.T) {
	for _, tc := range []struct {
		bits  int
		words int
	}{
		{128, 12},
		{160, 15},
		{192, 18},
		{224, 21},
		{256, 24},
	} {
		phrase, err := seed.NewPhrase(tc.bits)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(phrase), tc.words)
		assert.NoError(t, seed.Validate(phrase))
	}

	_, err := seed.NewPhrase(100)
	require.Error(t, err)
}

func TestDeriveDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SampledFrom([]int{128, 160, 192, 224, 256}).Draw(t, "bits")
		passphrase := rapid.String().Draw(t, "passphrase")

		phrase, err := seed.NewPhrase(bits)
		if err != nil {
			t.Fatalf("new phrase: %v", err)
		}

		a, err := seed.Derive(phrase, passphrase)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		defer a.Wipe()

		b, err := seed.Derive(phrase, passphrase)
		if err != nil {
			t.Fatalf("derive again: %v", err)
		}
		defer b.Wipe()

		if hex.EncodeToString(a.Bytes()) != hex.EncodeToString(b.Bytes()) {
			t.Fatalf("seed not deterministic for %d bit phrase", bits)
		}
	})
}
