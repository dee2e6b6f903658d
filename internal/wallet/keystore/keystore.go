// Package keystore stores seed phrases in password encrypted files using the
// cipher and KDF layout of Ethereum v3 keystores: scrypt derives a 32 byte
// key, the first half encrypts with AES-128-CTR and the second half keys the
// Keccak-256 MAC over the ciphertext.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	version = 3

	cipherName = "aes-128-ctr"
	kdfName    = "scrypt"

	saltLength = 32
	ivLength   = aes.BlockSize
	keyLength  = 32
)

var (
	// ErrDecrypt is returned for a wrong password or a tampered file.
	ErrDecrypt = errors.New("could not decrypt keystore with given password")
	// ErrUnsupported is returned for files not written by this package.
	ErrUnsupported = errors.New("unsupported keystore")
)

// ScryptParams are the scrypt cost parameters.
type ScryptParams struct {
	N int
	R int
	P int
}

var (
	// StandardScrypt matches the default of geth keystores.
	StandardScrypt = ScryptParams{N: 1 << 18, R: 8, P: 1}
	// LightScrypt is much cheaper, use it for tests and short lived files.
	LightScrypt = ScryptParams{N: 1 << 12, R: 8, P: 6}
)

//nolint:revive
type KeystoreJSON struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// Encrypt encrypts phrase with password.
func Encrypt(phrase string, password string, params ScryptParams) (*KeystoreJSON, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	//nolint:varnamelen
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate iv")
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, keyLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	defer wipe(derivedKey)

	plaintext := []byte(phrase)
	defer wipe(plaintext)

	ciphertext, err := aesCTR(derivedKey[:16], iv, plaintext)
	if err != nil {
		return nil, err
	}

	ks := &KeystoreJSON{
		Version: version,
		ID:      uuid.NewString(),
	}

	ks.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	ks.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	ks.Crypto.Cipher = cipherName
	ks.Crypto.KDF = kdfName
	ks.Crypto.KDFParams.DKLen = keyLength
	ks.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	ks.Crypto.KDFParams.N = params.N
	ks.Crypto.KDFParams.R = params.R
	ks.Crypto.KDFParams.P = params.P
	ks.Crypto.MAC = hex.EncodeToString(mac(derivedKey[16:32], ciphertext))

	return ks, nil
}

// Decrypt returns the phrase stored in ks.
func Decrypt(ks *KeystoreJSON, password string) (string, error) {
	if ks.Version != version || ks.Crypto.Cipher != cipherName || ks.Crypto.KDF != kdfName || ks.Crypto.KDFParams.DKLen != keyLength {
		return "", ErrUnsupported
	}

	salt, err := hex.DecodeString(ks.Crypto.KDFParams.Salt)
	if err != nil {
		return "", errors.Wrap(ErrUnsupported, "invalid salt")
	}

	//nolint:varnamelen
	iv, err := hex.DecodeString(ks.Crypto.CipherParams.IV)
	if err != nil || len(iv) != ivLength {
		return "", errors.Wrap(ErrUnsupported, "invalid iv")
	}

	ciphertext, err := hex.DecodeString(ks.Crypto.Ciphertext)
	if err != nil {
		return "", errors.Wrap(ErrUnsupported, "invalid ciphertext")
	}

	expectedMAC, err := hex.DecodeString(ks.Crypto.MAC)
	if err != nil {
		return "", errors.Wrap(ErrUnsupported, "invalid mac")
	}

	p := ks.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive key")
	}
	defer wipe(derivedKey)

	if subtle.ConstantTimeCompare(mac(derivedKey[16:32], ciphertext), expectedMAC) != 1 {
		return "", ErrDecrypt
	}

	plaintext, err := aesCTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return "", err
	}
	defer wipe(plaintext)

	return string(plaintext), nil
}

// Save writes ks to path, readable by the owner only.
func Save(path string, ks *KeystoreJSON) error {
	b, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write keystore %s", path)
	}

	return nil
}

func Load(path string) (*KeystoreJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	var ks KeystoreJSON
	if err := json.Unmarshal(b, &ks); err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}

	return &ks, nil
}

//nolint:varnamelen
func aesCTR(key []byte, iv []byte, in []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(in))
	cipher.NewCTR(block, iv).XORKeyStream(out, in)

	return out, nil
}

func mac(key []byte, ciphertext []byte) []byte {
	return crypto.Keccak256(key, ciphertext)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
