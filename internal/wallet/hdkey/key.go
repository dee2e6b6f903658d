// Package hdkey implements BIP32 hierarchical deterministic key derivation
// over secp256k1.
//
// Private and public extended keys are separate types. Hardened derivation
// is only defined on ExtendedKey, which owns the private scalar; a
// PublicExtendedKey can only derive normal children.
package hdkey

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

const (
	// HardenedKeyStart is the first hardened child index (2^31).
	HardenedKeyStart uint32 = 0x80000000

	// MinSeedBytes and MaxSeedBytes bound the seed accepted by NewRootKey.
	MinSeedBytes = 16
	MaxSeedBytes = 64

	keyLen         = 32
	pubKeyLen      = 33
	fingerprintLen = 4
	maxDepth       = 255
)

var masterKey = []byte("Bitcoin seed")

var (
	// ErrHardenedFromPublic is returned when a hardened child is requested
	// from a public extended key.
	ErrHardenedFromPublic = errors.New("cannot derive a hardened child from a public key")
	// ErrInvalidKeyMaterial is returned when IL is not below the curve order
	// or the resulting key is zero / the point at infinity.
	ErrInvalidKeyMaterial = errors.New("derived key is outside the valid range")
)

// ExtendedKey is a BIP32 extended private key. It is never mutated by
// derivation; every step returns a new key. Call Wipe when done.
type ExtendedKey struct {
	key        [keyLen]byte
	chainCode  [keyLen]byte
	parentFP   [fingerprintLen]byte
	childIndex uint32
	depth      uint8
}

// NewRootKey derives the master key from a binary seed:
// I = HMAC-SHA512(Key = "Bitcoin seed", Data = seed).
func NewRootKey(seed []byte) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, walleterr.Newf(walleterr.KindInvalidChildDerivation,
			"seed must be between %d and %d bytes", MinSeedBytes, MaxSeedBytes)
	}

	mac := hmac.New(sha512.New, masterKey)
	_, _ = mac.Write(seed)
	lr := mac.Sum(nil)
	defer clear(lr)

	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(lr[:keyLen]); overflow || k.IsZero() {
		k.Zero()
		return nil, walleterr.Wrap(ErrInvalidKeyMaterial, walleterr.KindInvalidChildDerivation, "unusable seed")
	}

	root := &ExtendedKey{}
	k.PutBytes(&root.key)
	k.Zero()
	copy(root.chainCode[:], lr[keyLen:])

	return root, nil
}

// Child derives the child at index. index must be below HardenedKeyStart;
// hardened selects hardened derivation (index + 2^31).
//
// Hardened: I = HMAC-SHA512(c_par, 0x00 || k_par || ser32(index + 2^31)).
// Normal:   I = HMAC-SHA512(c_par, serP(K_par) || ser32(index)), computed
// from the public half only.
// The child scalar is parse256(IL) + k_par mod n.
func (k *ExtendedKey) Child(index uint32, hardened bool) (*ExtendedKey, error) {
	if index >= HardenedKeyStart {
		return nil, walleterr.Newf(walleterr.KindInvalidChildDerivation,
			"child index %d must be below 2^31, use the hardened flag instead", index)
	}

	if k.depth == maxDepth {
		return nil, walleterr.New(walleterr.KindInvalidChildDerivation, "maximum derivation depth reached")
	}

	pub := k.Public()

	var lr []byte
	if hardened {
		index += HardenedKeyStart
		lr = k.hardenedMAC(index)
	} else {
		lr = pub.normalMAC(index)
	}
	defer clear(lr)

	var parent btcec.ModNScalar
	parent.SetBytes(&k.key)
	defer parent.Zero()

	scalar, err := childScalar(&parent, lr[:keyLen])
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindInvalidChildDerivation, Segment{Index: index &^ HardenedKeyStart, Hardened: hardened}.String())
	}
	defer scalar.Zero()

	child := &ExtendedKey{
		childIndex: index,
		depth:      k.depth + 1,
		parentFP:   pub.Fingerprint(),
	}
	scalar.PutBytes(&child.key)
	copy(child.chainCode[:], lr[keyLen:])

	return child, nil
}

func (k *ExtendedKey) hardenedMAC(index uint32) []byte {
	data := make([]byte, 1+keyLen+4)
	defer clear(data)

	copy(data[1:], k.key[:])
	binary.BigEndian.PutUint32(data[1+keyLen:], index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	_, _ = mac.Write(data)

	return mac.Sum(nil)
}

// childScalar returns il + parent mod n. IL at or above the curve order and
// a zero result are both invalid per BIP32.
func childScalar(parent *btcec.ModNScalar, il []byte) (btcec.ModNScalar, error) {
	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(il); overflow {
		return btcec.ModNScalar{}, ErrInvalidKeyMaterial
	}

	var child btcec.ModNScalar
	child.Add2(&tweak, parent)
	tweak.Zero()

	if child.IsZero() {
		return btcec.ModNScalar{}, ErrInvalidKeyMaterial
	}

	return child, nil
}

// DerivePath folds Child over path starting at the root key of seed.
// Intermediate keys are wiped as soon as their child exists.
func DerivePath(seed []byte, path Path) (*ExtendedKey, error) {
	key, err := NewRootKey(seed)
	if err != nil {
		return nil, err
	}

	for _, s := range path {
		child, err := key.Child(s.Index, s.Hardened)
		key.Wipe()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive %s", path)
		}

		key = child
	}

	return key, nil
}

// Public returns the public half of k.
func (k *ExtendedKey) Public() *PublicExtendedKey {
	priv, pub := btcec.PrivKeyFromBytes(k.key[:])
	priv.Zero()

	return &PublicExtendedKey{
		pub:        pub,
		chainCode:  k.chainCode,
		parentFP:   k.parentFP,
		childIndex: k.childIndex,
		depth:      k.depth,
	}
}

// KeyPair returns the ECDSA key pair of k on go-ethereum's secp256k1 curve.
// The returned private key shares nothing with k; the caller owns it.
func (k *ExtendedKey) KeyPair() (*KeyPair, error) {
	priv, err := crypto.ToECDSA(k.key[:])
	if err != nil {
		return nil, walleterr.Wrap(err, walleterr.KindInvalidChildDerivation, "leaf key is not a valid secp256k1 scalar")
	}

	return &KeyPair{Private: priv, Public: &priv.PublicKey}, nil
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte {
	b := make([]byte, keyLen)
	copy(b, k.chainCode[:])

	return b
}

func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildIndex returns the index including the hardened offset.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

func (k *ExtendedKey) IsHardened() bool {
	return k.childIndex >= HardenedKeyStart
}

func (k *ExtendedKey) ParentFingerprint() [fingerprintLen]byte {
	return k.parentFP
}

// Wipe zeroes the private scalar and chain code.
func (k *ExtendedKey) Wipe() {
	if k == nil {
		return
	}

	clear(k.key[:])
	clear(k.chainCode[:])
}

// PublicExtendedKey is a BIP32 extended public key. It has no private
// scalar and therefore no way to derive hardened children.
type PublicExtendedKey struct {
	pub        *btcec.PublicKey
	chainCode  [keyLen]byte
	parentFP   [fingerprintLen]byte
	childIndex uint32
	depth      uint8
}

// Child derives the normal child at index:
// K_child = point(parse256(IL)) + K_par.
// Hardened indexes fail with ErrHardenedFromPublic.
func (p *PublicExtendedKey) Child(index uint32) (*PublicExtendedKey, error) {
	if index >= HardenedKeyStart {
		return nil, walleterr.Wrap(ErrHardenedFromPublic, walleterr.KindInvalidChildDerivation, "")
	}

	if p.depth == maxDepth {
		return nil, walleterr.New(walleterr.KindInvalidChildDerivation, "maximum derivation depth reached")
	}

	lr := p.normalMAC(index)

	var tweak btcec.ModNScalar
	if overflow := tweak.SetByteSlice(lr[:keyLen]); overflow {
		return nil, walleterr.Wrap(ErrInvalidKeyMaterial, walleterr.KindInvalidChildDerivation, Normal(index).String())
	}

	var tweakJ, parentJ, childJ btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweak, &tweakJ)
	p.pub.AsJacobian(&parentJ)
	btcec.AddNonConst(&tweakJ, &parentJ, &childJ)

	if (childJ.X.IsZero() && childJ.Y.IsZero()) || childJ.Z.IsZero() {
		return nil, walleterr.Wrap(ErrInvalidKeyMaterial, walleterr.KindInvalidChildDerivation, Normal(index).String())
	}
	childJ.ToAffine()

	child := &PublicExtendedKey{
		pub:        btcec.NewPublicKey(&childJ.X, &childJ.Y),
		childIndex: index,
		depth:      p.depth + 1,
		parentFP:   p.Fingerprint(),
	}
	copy(child.chainCode[:], lr[keyLen:])

	return child, nil
}

// normalMAC computes I for a normal child. It only needs the public point,
// which is what makes public derivation possible for normal children.
func (p *PublicExtendedKey) normalMAC(index uint32) []byte {
	data := make([]byte, pubKeyLen+4)
	copy(data, p.pub.SerializeCompressed())
	binary.BigEndian.PutUint32(data[pubKeyLen:], index)

	mac := hmac.New(sha512.New, p.chainCode[:])
	_, _ = mac.Write(data)

	return mac.Sum(nil)
}

// Fingerprint is the first 4 bytes of HASH160(serP(K)).
func (p *PublicExtendedKey) Fingerprint() [fingerprintLen]byte {
	var fp [fingerprintLen]byte
	copy(fp[:], btcutil.Hash160(p.pub.SerializeCompressed()))

	return fp
}

// ECDSA returns the public point as a go-ethereum compatible ECDSA key.
func (p *PublicExtendedKey) ECDSA() (*ecdsa.PublicKey, error) {
	pub, err := crypto.UnmarshalPubkey(p.pub.SerializeUncompressed())
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert public key")
	}

	return pub, nil
}

// SerializeCompressed returns serP(K).
func (p *PublicExtendedKey) SerializeCompressed() []byte {
	return p.pub.SerializeCompressed()
}

func (p *PublicExtendedKey) ChainCode() []byte {
	b := make([]byte, keyLen)
	copy(b, p.chainCode[:])

	return b
}

func (p *PublicExtendedKey) Depth() uint8 {
	return p.depth
}

func (p *PublicExtendedKey) ChildIndex() uint32 {
	return p.childIndex
}

func (p *PublicExtendedKey) ParentFingerprint() [fingerprintLen]byte {
	return p.parentFP
}

// KeyPair is the leaf key pair used for address derivation and signing.
type KeyPair struct {
	Private *ecdsa.PrivateKey
	Public  *ecdsa.PublicKey
}

// Wipe zeroes the private scalar.
func (kp *KeyPair) Wipe() {
	if kp == nil || kp.Private == nil || kp.Private.D == nil {
		return
	}

	clear(kp.Private.D.Bits())
	kp.Private.D.SetInt64(0)
}
