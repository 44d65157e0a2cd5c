// Package rlp provides RLP (Recursive Length Prefix) encoding and decoding
// for Ethereum legacy transactions, together with the minimal big-endian
// integer form every numeric field is carried in.
// See: https://ethereum.org/en/developers/docs/data-structures-and-encoding/rlp/
package rlp

import (
	"math/big"
)

// Header offsets. A payload of up to shortMax bytes stores its size in the
// prefix byte; longer payloads store the size of the size there instead.
const (
	stringOffset byte = 0x80
	listOffset   byte = 0xc0
	shortMax          = 55
)

// Encode returns the RLP encoding of val. Supported types are Value, []byte,
// [][]byte, *big.Int, uint64 and []any holding any of those. Anything else,
// at any depth, yields nil.
func Encode(val any) []byte {
	out, ok := appendAny(nil, val)
	if !ok {
		return nil
	}
	return out
}

// EncodeValue encodes an RLP tree.
func EncodeValue(v Value) []byte {
	return appendValue(nil, v)
}

// EncodeList encodes a flat list of byte strings, the shape of every transaction record.
func EncodeList(items [][]byte) []byte {
	var payload []byte
	for _, item := range items {
		payload = appendString(payload, item)
	}
	return appendList(nil, payload)
}

func appendAny(dst []byte, val any) ([]byte, bool) {
	switch v := val.(type) {
	case Value:
		return appendValue(dst, v), true
	case []byte:
		return appendString(dst, v), true
	case [][]byte:
		return append(dst, EncodeList(v)...), true
	case *big.Int:
		return appendString(dst, Canonicalize(v)), true
	case uint64:
		return appendString(dst, CanonicalizeUint64(v)), true
	case []any:
		var payload []byte
		for _, item := range v {
			var ok bool
			if payload, ok = appendAny(payload, item); !ok {
				return dst, false
			}
		}
		return appendList(dst, payload), true
	default:
		return dst, false
	}
}

func appendValue(dst []byte, v Value) []byte {
	if !v.IsList() {
		return appendString(dst, v.Bytes())
	}
	var payload []byte
	for _, item := range v.Items() {
		payload = appendValue(payload, item)
	}
	return appendList(dst, payload)
}

// appendString writes b as a byte string. A lone byte below 0x80 is its own encoding.
func appendString(dst, b []byte) []byte {
	if len(b) == 1 && b[0] < stringOffset {
		return append(dst, b[0])
	}
	return append(appendHeader(dst, stringOffset, len(b)), b...)
}

// appendList wraps already encoded items.
func appendList(dst, payload []byte) []byte {
	return append(appendHeader(dst, listOffset, len(payload)), payload...)
}

func appendHeader(dst []byte, offset byte, size int) []byte {
	if size <= shortMax {
		return append(dst, offset+byte(size)) //nolint:gosec // G115: size <= 55
	}
	sizeBytes := bigEndianBytes(uint64(size))               //nolint:gosec // G115: payload sizes are never negative
	dst = append(dst, offset+shortMax+byte(len(sizeBytes))) //nolint:gosec // G115: at most 8 size bytes
	return append(dst, sizeBytes...)
}
