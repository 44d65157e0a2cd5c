package rlp

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

func TestDecodeByteStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"single byte 0x00", "00", []byte{0x00}},
		{"single byte 0x7f", "7f", []byte{0x7f}},
		{"single byte 0x80", "8180", []byte{0x80}},
		{"empty string", "80", []byte{}},
		{"dog", "83646f67", []byte("dog")},
		{"55 bytes", "b7" + hex.EncodeToString(make([]byte, 55)), make([]byte, 55)},
		{"56 bytes", "b838" + hex.EncodeToString(bytes.Repeat([]byte{0xaa}, 56)), bytes.Repeat([]byte{0xaa}, 56)},
		{"1024 bytes", "b90400" + hex.EncodeToString(make([]byte, 1024)), make([]byte, 1024)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Decode(hexBytes(tc.input))
			require.NoError(t, err)
			assert.False(t, v.IsList())
			assert.Equal(t, tc.expected, v.Bytes())
		})
	}
}

func TestDecodeLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{"empty list", "c0", List()},
		{"cat dog", "c88363617483646f67", List(String([]byte("cat")), String([]byte("dog")))},
		{"nested empty", "c3c0c1c0", List(List(), List(List()))},
		{"set theoretic three", "c7c0c1c0c3c0c1c0", List(List(), List(List()), List(List(), List(List())))},
		{"mixed", "c6827a77c10401", List(String([]byte("zw")), List(String([]byte{0x04})), String([]byte{0x01}))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Decode(hexBytes(tc.input))
			require.NoError(t, err)
			assert.True(t, v.IsList())
			assert.True(t, tc.expected.Equal(v), "decoded %x", EncodeValue(v))
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		reason error
	}{
		{"empty input", "", ErrEmptyInput},
		{"truncated string", "83646f", ErrTruncated},
		{"truncated single byte wrapper", "81", ErrTruncated},
		{"truncated list", "c883636174", ErrTruncated},
		{"truncated length of length", "b9", ErrTruncated},
		{"truncated long list length", "f9ff", ErrTruncated},
		{"single byte wrapped", "8105", ErrCanonSingleByte},
		{"long form for short string", "b80a" + hex.EncodeToString(make([]byte, 10)), ErrCanonSize},
		{"long form for short list", "f801c0", ErrCanonSize},
		{"leading zero in string length", "b90038" + hex.EncodeToString(make([]byte, 56)), ErrCanonLength},
		{"leading zero in list length", "f90038" + hex.EncodeToString(make([]byte, 56)), ErrCanonLength},
		{"length overflows int", "bfffffffffffffffff00", ErrSizeOverflow},
		{"trailing bytes", "8080", ErrTrailingBytes},
		{"trailing bytes after list", "c0c0", ErrTrailingBytes},
		{"child overruns parent", "c283646f67", ErrTruncated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(hexBytes(tc.input))
			require.Error(t, err)
			require.ErrorIs(t, err, quillerr.ErrMalformedEncoding)
			require.ErrorIs(t, err, tc.reason)
		})
	}
}

func TestDecodeTooDeep(t *testing.T) {
	t.Parallel()

	v := List()
	for i := 0; i < MaxDepth+1; i++ {
		v = List(v)
	}
	_, err := Decode(EncodeValue(v))
	require.ErrorIs(t, err, ErrTooDeep)
	require.ErrorIs(t, err, quillerr.ErrMalformedEncoding)

	// Exactly MaxDepth levels below the root is still accepted.
	v = List()
	for i := 0; i < MaxDepth; i++ {
		v = List(v)
	}
	_, err = Decode(EncodeValue(v))
	require.NoError(t, err)
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	input := hexBytes("83646f67")
	v, err := Decode(input)
	require.NoError(t, err)

	input[1] = 'x'
	assert.Equal(t, []byte("dog"), v.Bytes())
}

func TestDecodeListHead(t *testing.T) {
	t.Parallel()

	unsigned := hexBytes("dc80018252089435353535353535353535353535353535353535358080")

	t.Run("flat list", func(t *testing.T) {
		t.Parallel()
		items, err := DecodeListHead(unsigned, 6)
		require.NoError(t, err)
		require.Len(t, items, 6)
		assert.Empty(t, items[0])
		assert.Equal(t, []byte{0x01}, items[1])
		assert.Equal(t, []byte{0x52, 0x08}, items[2])
		assert.Len(t, items[3], 20)
	})

	t.Run("shorter than n", func(t *testing.T) {
		t.Parallel()
		items, err := DecodeListHead(unsigned, 9)
		require.NoError(t, err)
		assert.Len(t, items, 6)
	})

	t.Run("nested items past n are skipped", func(t *testing.T) {
		t.Parallel()
		// ["cat", [], [[]]]
		items, err := DecodeListHead(hexBytes("c783636174c0c1c0"), 1)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("cat")}, items)
	})

	t.Run("not a list", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeListHead(hexBytes("83646f67"), 6)
		require.ErrorIs(t, err, ErrExpectedList)
		require.ErrorIs(t, err, quillerr.ErrMalformedEncoding)
	})

	t.Run("nested item within n", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeListHead(hexBytes("c3c0c1c0"), 6)
		require.ErrorIs(t, err, ErrExpectedByteSlice)
		require.ErrorIs(t, err, quillerr.ErrMalformedEncoding)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeListHead(hexBytes("c883"), 6)
		require.ErrorIs(t, err, quillerr.ErrMalformedEncoding)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	long := bytes.Repeat([]byte{0x42}, 300)
	trees := []Value{
		String(nil),
		String([]byte{0x00}),
		String([]byte{0x7f}),
		String([]byte{0x80}),
		String(long),
		List(),
		List(String(long), String(long)),
		List(List(List(List())), String([]byte("x")), List(String(nil))),
		StringList([][]byte{{}, {0x01}, {0x52, 0x08}, make([]byte, 20), {}, {}}),
		String(Canonicalize(new(big.Int).Lsh(big.NewInt(1), 255))),
	}

	for i, tree := range trees {
		encoded := EncodeValue(tree)
		decoded, err := Decode(encoded)
		require.NoError(t, err, "tree %d", i)
		assert.True(t, tree.Equal(decoded), "tree %d did not round-trip", i)
		assert.Equal(t, encoded, EncodeValue(decoded), "tree %d re-encoding differs", i)
	}
}
