package seed

import (
	"crypto/sha512"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"github/chapool/go-transfer/internal/wallet/walleterr"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
	pbkdf2Iterations = 2048
	saltPrefix       = "mnemonic"

	// Size is the length of a derived binary seed in bytes (512 bits).
	Size = 64
)

// validWordCounts are the phrase lengths BIP39 defines (128 to 256 bits of entropy).
var validWordCounts = map[int]struct{}{
	12: {},
	15: {},
	18: {},
	21: {},
	24: {},
}

// Seed is a BIP39 binary seed. Call Wipe once it is no longer needed.
type Seed struct {
	b []byte
}

// Bytes returns the seed bytes. The slice aliases the seed and is zeroed by Wipe.
func (s *Seed) Bytes() []byte {
	return s.b
}

// Wipe zeroes the seed in memory.
func (s *Seed) Wipe() {
	if s == nil {
		return
	}

	clear(s.b)
	s.b = nil
}

// Derive converts a seed phrase and optional passphrase into a 64 byte
// binary seed after checking words and checksum against the English
// wordlist. The result is never cached.
func Derive(phrase string, passphrase string) (*Seed, error) {
	normalized, err := validate(phrase)
	if err != nil {
		return nil, err
	}

	key := pbkdf2.Key(
		[]byte(normalized),
		[]byte(saltPrefix+norm.NFKD.String(passphrase)),
		pbkdf2Iterations,
		Size,
		sha512.New,
	)

	return &Seed{b: key}, nil
}

// Validate checks that phrase is a well-formed BIP39 mnemonic without
// running the key stretching.
func Validate(phrase string) error {
	_, err := validate(phrase)
	return err
}

// NewPhrase generates a fresh mnemonic with the given entropy size in bits
// (128 for 12 words up to 256 for 24 words).
func NewPhrase(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	defer clear(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate mnemonic")
	}

	return phrase, nil
}

// normalize applies NFKD and collapses runs of whitespace to a single space.
func normalize(phrase string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(phrase)), " ")
}

func validate(phrase string) (string, error) {
	normalized := normalize(phrase)
	words := strings.Fields(normalized)

	if _, ok := validWordCounts[len(words)]; !ok {
		return "", walleterr.Newf(walleterr.KindInvalidPhrase, "phrase has %d words, expected 12, 15, 18, 21 or 24", len(words))
	}

	for i, word := range words {
		if _, ok := bip39.GetWordIndex(word); !ok {
			return "", walleterr.Newf(walleterr.KindInvalidPhrase, "word %d is not in the wordlist", i+1)
		}
	}

	entropy, err := bip39.EntropyFromMnemonic(normalized)
	clear(entropy)
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return "", walleterr.Wrap(err, walleterr.KindChecksumMismatch, "phrase checksum does not match its entropy")
		}

		return "", walleterr.Wrap(err, walleterr.KindInvalidPhrase, "phrase could not be decoded")
	}

	return normalized, nil
}
