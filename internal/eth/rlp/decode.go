package rlp

import (
	"errors"
	"strconv"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// MaxDepth bounds list nesting during decoding.
const MaxDepth = 1024

// Decoding failure reasons. Decode reports them as the cause of
// quillerr.ErrMalformedEncoding, so callers may match either.
var (
	ErrEmptyInput        = errors.New("rlp: empty input")
	ErrTruncated         = errors.New("rlp: value size exceeds available input")
	ErrCanonSize         = errors.New("rlp: non-canonical size information")
	ErrCanonLength       = errors.New("rlp: length prefix has leading zero bytes")
	ErrCanonSingleByte   = errors.New("rlp: single byte below 0x80 must be encoded as itself")
	ErrSizeOverflow      = errors.New("rlp: length overflows")
	ErrTrailingBytes     = errors.New("rlp: input contains more than one value")
	ErrTooDeep           = errors.New("rlp: nesting exceeds maximum depth")
	ErrExpectedList      = errors.New("rlp: expected a list")
	ErrExpectedByteSlice = errors.New("rlp: expected a byte string")
)

// maxSize is the largest length the decoder accepts; anything larger cannot be backed by input anyway.
const maxSize = int(^uint(0) >> 1)

type kind int

const (
	kindByte kind = iota
	kindString
	kindList
)

// Decode parses exactly one RLP item from input.
// It rejects truncated input, non-canonical length prefixes and trailing bytes.
func Decode(input []byte) (Value, error) {
	if len(input) == 0 {
		return Value{}, malformed(ErrEmptyInput, 0)
	}

	v, n, err := decodeValue(input, 0, 0)
	if err != nil {
		return Value{}, err
	}
	if n != len(input) {
		return Value{}, malformed(ErrTrailingBytes, n)
	}
	return v, nil
}

// DecodeListHead parses input as a list and returns its first n items, or
// all of them when the list is shorter. Those items must be byte strings;
// items past n are not inspected.
func DecodeListHead(input []byte, n int) ([][]byte, error) {
	v, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, malformed(ErrExpectedList, 0)
	}

	items := v.Items()
	if len(items) > n {
		items = items[:n]
	}
	result := make([][]byte, len(items))
	for i, item := range items {
		if item.IsList() {
			return nil, quillerr.WithDetails(
				quillerr.WithCause(quillerr.ErrMalformedEncoding, ErrExpectedByteSlice),
				map[string]string{"item": strconv.Itoa(i)},
			)
		}
		result[i] = item.Bytes()
	}
	return result, nil
}

// decodeValue decodes the item starting at offset. buf is bounded by the
// enclosing list, so a child can never read past its parent.
// Returns the value and the number of bytes consumed.
func decodeValue(buf []byte, offset, depth int) (Value, int, error) {
	if depth > MaxDepth {
		return Value{}, 0, malformed(ErrTooDeep, offset)
	}

	k, headerSize, contentSize, err := readHeader(buf[offset:])
	if err != nil {
		return Value{}, 0, malformed(err, offset)
	}

	if k == kindByte {
		return String([]byte{buf[offset]}), 1, nil
	}

	start := offset + headerSize
	if contentSize > len(buf)-start {
		return Value{}, 0, malformed(ErrTruncated, offset)
	}
	end := start + contentSize

	if k == kindString {
		content := make([]byte, contentSize)
		copy(content, buf[start:end])
		return String(content), headerSize + contentSize, nil
	}

	bounded := buf[:end]
	items := []Value{}
	for pos := start; pos < end; {
		item, n, err := decodeValue(bounded, pos, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		items = append(items, item)
		pos += n
	}
	return List(items...), headerSize + contentSize, nil
}

// readHeader parses the prefix at the start of buf.
func readHeader(buf []byte) (k kind, headerSize, contentSize int, err error) {
	if len(buf) == 0 {
		return 0, 0, 0, ErrTruncated
	}

	b := buf[0]
	switch {
	case b < 0x80:
		return kindByte, 0, 1, nil
	case b < 0xb8:
		size := int(b - 0x80)
		if size == 1 {
			if len(buf) < 2 {
				return 0, 0, 0, ErrTruncated
			}
			if buf[1] < 0x80 {
				return 0, 0, 0, ErrCanonSingleByte
			}
		}
		return kindString, 1, size, nil
	case b < 0xc0:
		lenOfLen := int(b - 0xb7)
		size, err := readSize(buf[1:], lenOfLen)
		if err != nil {
			return 0, 0, 0, err
		}
		return kindString, 1 + lenOfLen, size, nil
	case b < 0xf8:
		return kindList, 1, int(b - 0xc0), nil
	default:
		lenOfLen := int(b - 0xf7)
		size, err := readSize(buf[1:], lenOfLen)
		if err != nil {
			return 0, 0, 0, err
		}
		return kindList, 1 + lenOfLen, size, nil
	}
}

// readSize reads a long-form big-endian length of n bytes.
func readSize(b []byte, n int) (int, error) {
	if len(b) < n {
		return 0, ErrTruncated
	}
	if b[0] == 0 {
		return 0, ErrCanonLength
	}

	var size uint64
	for i := 0; i < n; i++ {
		size = size<<8 | uint64(b[i])
	}
	if size > uint64(maxSize) {
		return 0, ErrSizeOverflow
	}
	if size < 56 {
		return 0, ErrCanonSize
	}
	return int(size), nil
}

// malformed builds the error returned for every decoding failure.
func malformed(reason error, offset int) error {
	return quillerr.WithDetails(
		quillerr.WithCause(quillerr.ErrMalformedEncoding, reason),
		map[string]string{"offset": strconv.Itoa(offset)},
	)
}
