package ethtypes

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strings"

	"github.com/mrz1836/quill/internal/eth/rlp"
)

var (
	// ErrNegativeInteger indicates a negative number supplied for an integer field.
	ErrNegativeInteger = errors.New("integer must not be negative")

	// ErrIntegerForBytes indicates a number supplied for a byte-string field.
	ErrIntegerForBytes = errors.New("byte field requires a hex string")
)

// ValueKind identifies which alternative a Value holds.
type ValueKind uint8

// Value kinds.
const (
	KindAbsent ValueKind = iota
	KindInt
	KindHex
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindInt:
		return "integer"
	case KindHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Value is a single transaction record input: absent, an integer, or a hex string.
// The zero Value is absent.
type Value struct {
	kind ValueKind
	n    *big.Int
	hex  string
}

// Absent returns the value used for fields that were not supplied.
func Absent() Value {
	return Value{}
}

// Int returns an integer value. A nil n is treated as absent.
func Int(n *big.Int) Value {
	if n == nil {
		return Absent()
	}
	return Value{kind: KindInt, n: new(big.Int).Set(n)}
}

// Int64 returns an integer value.
func Int64(i int64) Value {
	return Value{kind: KindInt, n: big.NewInt(i)}
}

// Uint64 returns an integer value.
func Uint64(u uint64) Value {
	return Value{kind: KindInt, n: new(big.Int).SetUint64(u)}
}

// Hex returns a hex string value. The 0x prefix is optional.
func Hex(s string) Value {
	return Value{kind: KindHex, hex: s}
}

// Kind reports which alternative v holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether v is absent.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return v.n.String()
	case KindHex:
		return v.hex
	default:
		return "<absent>"
	}
}

// integerBytes converts v to the minimal big-endian form of an integer field.
func (v Value) integerBytes() ([]byte, error) {
	switch v.kind {
	case KindInt:
		if v.n.Sign() < 0 {
			return nil, ErrNegativeInteger
		}
		return rlp.Canonicalize(v.n), nil
	case KindHex:
		b, err := decodeHex(v.hex)
		if err != nil {
			return nil, err
		}
		return rlp.StripLeadingZeros(b), nil
	default:
		return []byte{}, nil
	}
}

// byteString converts v to the raw bytes of a byte-string field.
func (v Value) byteString() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return nil, ErrIntegerForBytes
	case KindHex:
		return decodeHex(v.hex)
	default:
		return []byte{}, nil
	}
}

// decodeHex decodes s with an optional 0x prefix. An odd digit count is
// left-padded with a zero nibble.
func decodeHex(s string) ([]byte, error) {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func hasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}
