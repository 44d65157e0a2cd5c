package rlp

import (
	"math/big"
)

// Canonicalize returns the minimal big-endian representation of i.
// Zero (and nil) canonicalize to the empty byte string.
// Negative values are not supported; callers must reject them first.
func Canonicalize(i *big.Int) []byte {
	if i == nil || i.Sign() == 0 {
		return []byte{}
	}
	return i.Bytes()
}

// CanonicalizeUint64 returns the minimal big-endian representation of i.
func CanonicalizeUint64(i uint64) []byte {
	b := bigEndianBytes(i)
	if b == nil {
		return []byte{}
	}
	return b
}

// Decanonicalize interprets b as an unsigned big-endian integer.
// The empty byte string is zero.
func Decanonicalize(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// StripLeadingZeros returns b without its leading zero bytes.
// The result shares b's backing array.
func StripLeadingZeros(b []byte) []byte {
	for i, c := range b {
		if c != 0 {
			return b[i:]
		}
	}
	return []byte{}
}

// bigEndianBytes converts a uint64 to minimal big-endian bytes (no leading zeros).
func bigEndianBytes(i uint64) []byte {
	if i == 0 {
		return nil
	}

	// Find the number of significant bytes
	n := 0
	for v := i; v > 0; v >>= 8 {
		n++
	}

	result := make([]byte, n)
	for j := n - 1; j >= 0; j-- {
		result[j] = byte(i)
		i >>= 8
	}
	return result
}
