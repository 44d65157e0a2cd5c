package ethcrypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/mrz1836/quill/internal/eth/rlp"
)

var (
	// ErrInvalidPrivateKey indicates the private key is not a 32-byte scalar in [1, n-1].
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidHashLength indicates the hash length is not 32 bytes.
	ErrInvalidHashLength = errors.New("hash must be 32 bytes")

	// ErrInvalidRecoveryID indicates a v value other than 27 or 28.
	ErrInvalidRecoveryID = errors.New("v must be 27 or 28")

	// ErrInvalidSignatureValue indicates r or s outside [1, n-1].
	ErrInvalidSignatureValue = errors.New("signature value out of range")

	// ErrRecoveryFailed indicates no public key could be recovered from the signature.
	ErrRecoveryFailed = errors.New("public key recovery failed")
)

// RecoveryOffset is added to the recovery parameter to form v.
const RecoveryOffset = 27

// Signature is a recoverable secp256k1 signature in Ethereum legacy form.
// R and S are minimal big-endian; V is 27 or 28.
type Signature struct {
	V byte
	R []byte
	S []byte
}

// RecoveryParam returns V without the legacy offset.
func (sig *Signature) RecoveryParam() byte {
	return sig.V - RecoveryOffset
}

// Fields returns the [v, r, s] items as they appear in a signed transaction.
func (sig *Signature) Fields() [][]byte {
	return [][]byte{{sig.V}, sig.R, sig.S}
}

// Encode returns the RLP encoding of the list [v, r, s].
func (sig *Signature) Encode() []byte {
	return rlp.EncodeList(sig.Fields())
}

// Hex returns Encode as 0x-prefixed lowercase hex.
func (sig *Signature) Hex() string {
	return "0x" + hex.EncodeToString(sig.Encode())
}

// ValidatePrivateKey checks that key is 32 bytes encoding a scalar in [1, n-1].
func ValidatePrivateKey(key []byte) error {
	if len(key) != ScalarLength || !IsValidScalar(key) {
		return ErrInvalidPrivateKey
	}
	return nil
}

// Sign produces a deterministic (RFC 6979), low-s, recoverable signature of
// a 32-byte hash. The key is used in place and not retained.
func Sign(hash, privateKey []byte) (*Signature, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}
	if err := ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	privKey := secp256k1.PrivKeyFromBytes(privateKey)
	defer privKey.Zero()

	// SignCompact returns [27+recid || R || S] with S already normalized to the lower half.
	compact := ecdsa.SignCompact(privKey, hash, false)
	if len(compact) != 1+2*ScalarLength {
		return nil, ErrInvalidSignatureValue
	}

	recID := compact[0] - RecoveryOffset
	if recID > 1 {
		// x-coordinate overflow, probability ~2^-127
		return nil, fmt.Errorf("%w: unsupported recovery id %d", ErrInvalidSignatureValue, recID)
	}

	return &Signature{
		V: compact[0],
		R: rlp.StripLeadingZeros(compact[1 : 1+ScalarLength]),
		S: rlp.StripLeadingZeros(compact[1+ScalarLength:]),
	}, nil
}

// ValidateSignature checks v, r and s without doing any curve arithmetic.
func ValidateSignature(v int, r, s []byte) error {
	if v != RecoveryOffset && v != RecoveryOffset+1 {
		return ErrInvalidRecoveryID
	}
	if !IsValidScalar(r) || !IsValidScalar(s) {
		return ErrInvalidSignatureValue
	}
	return nil
}

// RecoverPublicKey recovers the signer's public key from a 32-byte hash and
// signature. It returns the 64-byte X || Y coordinates without the 0x04 prefix.
// High-s signatures are accepted.
func RecoverPublicKey(hash []byte, sig *Signature) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, ErrInvalidHashLength
	}
	if err := ValidateSignature(int(sig.V), sig.R, sig.S); err != nil {
		return nil, err
	}

	compact := make([]byte, 0, 1+2*ScalarLength)
	compact = append(compact, sig.V)
	compact = append(compact, leftPad32(sig.R)...)
	compact = append(compact, leftPad32(sig.S)...)

	pubKey, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}
	return pubKey.SerializeUncompressed()[1:], nil
}

// PrivateKeyToPublicKey derives the public key from a private key.
// Returns the uncompressed public key (65 bytes: 0x04 || X || Y).
func PrivateKeyToPublicKey(privateKey []byte) ([]byte, error) {
	if err := ValidatePrivateKey(privateKey); err != nil {
		return nil, err
	}

	privKey := secp256k1.PrivKeyFromBytes(privateKey)
	defer privKey.Zero()

	return privKey.PubKey().SerializeUncompressed(), nil
}
