package hdkey

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Mainnet version bytes, shared by every wallet that exports xprv/xpub for
// EVM accounts.
var (
	versionPrivate = [4]byte{0x04, 0x88, 0xad, 0xe4} // xprv
	versionPublic  = [4]byte{0x04, 0x88, 0xb2, 0x1e} // xpub
)

const serializedLen = 4 + 1 + fingerprintLen + 4 + keyLen + pubKeyLen

// String returns the base58check xprv serialization. It contains the
// private scalar: never log it.
func (k *ExtendedKey) String() string {
	keyData := make([]byte, pubKeyLen)
	defer clear(keyData)
	copy(keyData[1:], k.key[:])

	return serialize(versionPrivate, k.depth, k.parentFP, k.childIndex, k.chainCode, keyData)
}

// String returns the base58check xpub serialization.
func (p *PublicExtendedKey) String() string {
	return serialize(versionPublic, p.depth, p.parentFP, p.childIndex, p.chainCode, p.pub.SerializeCompressed())
}

func serialize(version [4]byte, depth uint8, parentFP [fingerprintLen]byte, childIndex uint32, chainCode [keyLen]byte, keyData []byte) string {
	b := make([]byte, 0, serializedLen+4)
	b = append(b, version[:]...)
	b = append(b, depth)
	b = append(b, parentFP[:]...)
	b = binary.BigEndian.AppendUint32(b, childIndex)
	b = append(b, chainCode[:]...)
	b = append(b, keyData...)

	checksum := chainhash.DoubleHashB(b)[:4]
	b = append(b, checksum...)
	defer clear(b)

	return base58.Encode(b)
}
