// Package address derives EVM addresses from public keys and renders and
// validates their EIP-55 checksummed form.
package address

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

const (
	// Length is the raw address length in bytes.
	Length = common.AddressLength

	hexLength = 2 * Length
	prefix    = "0x"
)

// FromPublicKey hashes the uncompressed public point (without its 0x04
// format byte) with Keccak-256 and keeps the last 20 bytes.
func FromPublicKey(pub *ecdsa.PublicKey) common.Address {
	point := crypto.FromECDSAPub(pub)
	hash := crypto.Keccak256(point[1:])

	return common.BytesToAddress(hash[len(hash)-Length:])
}

// Checksum renders addr as "0x" followed by its EIP-55 mixed-case hex.
func Checksum(addr common.Address) string {
	lower := hex.EncodeToString(addr.Bytes())
	return prefix + checksumHex(lower)
}

// checksumHex uppercases every letter of lower whose nibble in
// Keccak-256(lower) is 8 or above.
func checksumHex(lower string) string {
	hash := crypto.Keccak256([]byte(lower))

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}

		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}

	return string(out)
}

// ValidateChecksum reports whether s is a 20 byte hex address whose casing
// is consistent with EIP-55. The 0x prefix is optional. All-lowercase and
// all-uppercase strings carry no checksum and are accepted.
func ValidateChecksum(s string) bool {
	digits := trimPrefix(s)
	if len(digits) != hexLength {
		return false
	}

	if _, err := hex.DecodeString(digits); err != nil {
		return false
	}

	lower := strings.ToLower(digits)
	if digits == lower || digits == strings.ToUpper(digits) {
		return true
	}

	return digits == checksumHex(lower)
}

// Parse validates s with ValidateChecksum and returns the raw address.
func Parse(s string) (common.Address, error) {
	if !ValidateChecksum(s) {
		return common.Address{}, walleterr.Newf(walleterr.KindInvalidAddress, "%q is not a valid checksummed address", s)
	}

	return common.HexToAddress(trimPrefix(s)), nil
}

// Normalize parses s and returns its checksummed rendering.
func Normalize(s string) (string, error) {
	addr, err := Parse(s)
	if err != nil {
		return "", err
	}

	return Checksum(addr), nil
}

func trimPrefix(s string) string {
	if strings.HasPrefix(s, prefix) || strings.HasPrefix(s, "0X") {
		return s[len(prefix):]
	}

	return s
}
