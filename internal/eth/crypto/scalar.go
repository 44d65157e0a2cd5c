package ethcrypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarLength is the size of a secp256k1 private key or signature component.
const ScalarLength = 32

// toScalar interprets b as a big-endian integer of at most 32 bytes.
// ok is false when b is too long, zero, or not below the curve order.
func toScalar(b []byte) (s secp256k1.ModNScalar, ok bool) {
	if len(b) > ScalarLength {
		return s, false
	}
	var buf [ScalarLength]byte
	copy(buf[ScalarLength-len(b):], b)
	overflow := s.SetBytes(&buf)
	clear(buf[:])
	if overflow != 0 || s.IsZero() {
		return s, false
	}
	return s, true
}

// IsValidScalar reports whether b encodes an integer in [1, n-1].
func IsValidScalar(b []byte) bool {
	s, ok := toScalar(b)
	s.Zero()
	return ok
}

// IsLowS reports whether s is a valid scalar no greater than n/2.
func IsLowS(s []byte) bool {
	v, ok := toScalar(s)
	return ok && !v.IsOverHalfOrder()
}

// leftPad32 returns b left-padded with zeros to 32 bytes.
// b must be no longer than 32 bytes.
func leftPad32(b []byte) []byte {
	out := make([]byte, ScalarLength)
	copy(out[ScalarLength-len(b):], b)
	return out
}
