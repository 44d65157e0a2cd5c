// Package ethcrypto provides the secp256k1 and keccak-256 primitives used to
// sign and recover Ethereum legacy transactions.
package ethcrypto

import (
	"golang.org/x/crypto/sha3"
)

// HashLength is the size of a keccak-256 digest.
const HashLength = 32

// Keccak256 computes the Keccak-256 hash of the input data.
// This is the pre-standard Keccak, not NIST SHA3-256.
func Keccak256(data ...[]byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, b := range data {
		hasher.Write(b)
	}
	return hasher.Sum(nil)
}

