package keystore_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/wallet/keystore"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestEncryptDecrypt(t *testing.T) {
	ks, err := keystore.Encrypt(abandonAbout, "correct horse", keystore.LightScrypt)
	require.NoError(t, err)

	assert.Equal(t, 3, ks.Version)
	assert.NotEmpty(t, ks.ID)
	assert.NotContains(t, ks.Crypto.Ciphertext, "abandon")

	phrase, err := keystore.Decrypt(ks, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, abandonAbout, phrase)

	_, err = keystore.Decrypt(ks, "wrong horse")
	require.ErrorIs(t, err, keystore.ErrDecrypt)
}

func TestEncryptIsRandomized(t *testing.T) {
	a, err := keystore.Encrypt(abandonAbout, "pw", keystore.LightScrypt)
	require.NoError(t, err)
	b, err := keystore.Encrypt(abandonAbout, "pw", keystore.LightScrypt)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Crypto.Ciphertext, b.Crypto.Ciphertext)
	assert.NotEqual(t, a.Crypto.KDFParams.Salt, b.Crypto.KDFParams.Salt)
}

func TestDecryptTampered(t *testing.T) {
	ks, err := keystore.Encrypt(abandonAbout, "pw", keystore.LightScrypt)
	require.NoError(t, err)

	first := ks.Crypto.Ciphertext[0]
	replacement := "0"
	if first == '0' {
		replacement = "1"
	}
	ks.Crypto.Ciphertext = replacement + ks.Crypto.Ciphertext[1:]

	_, err = keystore.Decrypt(ks, "pw")
	require.ErrorIs(t, err, keystore.ErrDecrypt)

	ks.Crypto.Cipher = "aes-256-gcm"
	_, err = keystore.Decrypt(ks, "pw")
	require.ErrorIs(t, err, keystore.ErrUnsupported)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase.json")

	ks, err := keystore.Encrypt(abandonAbout, "pw", keystore.LightScrypt)
	require.NoError(t, err)
	require.NoError(t, keystore.Save(path, ks))

	loaded, err := keystore.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ks, loaded)

	phrase, err := keystore.Decrypt(loaded, "pw")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(phrase, "about"))

	_, err = keystore.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
