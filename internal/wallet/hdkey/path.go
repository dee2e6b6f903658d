package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// PurposeBIP44 is the purpose level of every BIP44 path.
	PurposeBIP44 uint32 = 44
	// CoinTypeEthereum is the SLIP-44 coin type shared by EVM chains.
	CoinTypeEthereum uint32 = 60
)

// Segment is one level of a derivation path. Index is always below
// HardenedKeyStart; hardening is carried by the flag.
type Segment struct {
	Index    uint32
	Hardened bool
}

// Hardened returns a hardened segment for index.
func Hardened(index uint32) Segment {
	return Segment{Index: index, Hardened: true}
}

// Normal returns a non-hardened segment for index.
func Normal(index uint32) Segment {
	return Segment{Index: index}
}

func (s Segment) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "'"
	}

	return strconv.FormatUint(uint64(s.Index), 10)
}

// Path is an ordered derivation path starting at the root key.
type Path []Segment

// EthereumPath returns m/44'/coinType'/account'/change/addressIndex.
func EthereumPath(coinType, account, change, addressIndex uint32) Path {
	return Path{
		Hardened(PurposeBIP44),
		Hardened(coinType),
		Hardened(account),
		Normal(change),
		Normal(addressIndex),
	}
}

// DefaultPath is m/44'/60'/0'/0/0.
func DefaultPath() Path {
	return EthereumPath(CoinTypeEthereum, 0, 0, 0)
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, s := range p {
		sb.WriteByte('/')
		sb.WriteString(s.String())
	}

	return sb.String()
}

// ValidateEthereum checks the BIP44 shape: five levels, the first three
// hardened and the last two normal, with purpose 44.
func (p Path) ValidateEthereum() error {
	const levels = 5
	if len(p) != levels {
		return fmt.Errorf("path %s has %d levels, expected %d", p, len(p), levels)
	}

	if p[0].Index != PurposeBIP44 {
		return fmt.Errorf("path %s has purpose %d, expected %d", p, p[0].Index, PurposeBIP44)
	}

	for i, s := range p {
		if s.Index >= HardenedKeyStart {
			return fmt.Errorf("path %s: level %d index %d out of range", p, i+1, s.Index)
		}

		if wantHardened := i < 3; s.Hardened != wantHardened {
			return fmt.Errorf("path %s: level %d hardened=%t, expected %t", p, i+1, s.Hardened, wantHardened)
		}
	}

	return nil
}

// ParsePath parses a path like "m/44'/60'/0'/0/0". Both ' and h mark a
// hardened level.
func ParsePath(path string) (Path, error) {
	path = strings.TrimSpace(path)
	if path == "" || path[0] != 'm' {
		return nil, fmt.Errorf("invalid BIP44 path: %q", path)
	}

	rest := strings.TrimPrefix(path[1:], "/")
	if rest == "" {
		return Path{}, nil
	}

	parts := strings.Split(rest, "/")
	parsed := make(Path, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid path segment %q", part)
		}

		parsed = append(parsed, Segment{Index: uint32(index), Hardened: hardened})
	}

	return parsed, nil
}
