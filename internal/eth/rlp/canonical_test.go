package rlp

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *big.Int
		expected string
	}{
		{"nil", nil, ""},
		{"zero", big.NewInt(0), ""},
		{"one", big.NewInt(1), "01"},
		{"255", big.NewInt(255), "ff"},
		{"256", big.NewInt(256), "0100"},
		{"21000", big.NewInt(21000), "5208"},
		{"1 ETH in wei", new(big.Int).SetBytes(hexBytes("0de0b6b3a7640000")), "0de0b6b3a7640000"},
		{"2^256-1", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), strings.Repeat("ff", 32)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Canonicalize(tc.input)
			require.NotNil(t, result)
			assert.Equal(t, tc.expected, hex.EncodeToString(result))
		})
	}
}

func TestCanonicalizeUint64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    uint64
		expected string
	}{
		{0, ""},
		{1, "01"},
		{127, "7f"},
		{128, "80"},
		{21000, "5208"},
		{1<<64 - 1, "ffffffffffffffff"},
	}

	for _, tc := range tests {
		result := CanonicalizeUint64(tc.input)
		require.NotNil(t, result)
		assert.Equal(t, tc.expected, hex.EncodeToString(result), "input %d", tc.input)
	}
}

func TestDecanonicalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), Decanonicalize(nil).Int64())
	assert.Equal(t, int64(0), Decanonicalize([]byte{}).Int64())
	assert.Equal(t, int64(0), Decanonicalize([]byte{0, 0}).Int64())
	assert.Equal(t, int64(21000), Decanonicalize([]byte{0x52, 0x08}).Int64())
	assert.Equal(t, int64(21000), Decanonicalize([]byte{0x00, 0x52, 0x08}).Int64())
}

func TestCanonicalIdempotence(t *testing.T) {
	t.Parallel()

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(0x7f),
		big.NewInt(0x80),
		big.NewInt(0xffff),
		new(big.Int).Lsh(big.NewInt(1), 64),
		new(big.Int).Lsh(big.NewInt(1), 255),
	}

	for _, n := range values {
		once := Canonicalize(n)
		twice := Canonicalize(Decanonicalize(once))
		assert.Equal(t, once, twice, "n=%s", n)
		assert.Equal(t, 0, n.Cmp(Decanonicalize(once)), "n=%s", n)
		if len(once) > 0 {
			assert.NotEqual(t, byte(0), once[0], "leading zero for n=%s", n)
		}
	}
}

func TestStripLeadingZeros(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"nil", nil, []byte{}},
		{"all zero", []byte{0, 0, 0}, []byte{}},
		{"no zeros", []byte{1, 2}, []byte{1, 2}},
		{"leading zeros", []byte{0, 0, 1, 0}, []byte{1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := StripLeadingZeros(tc.input)
			require.NotNil(t, result)
			assert.Equal(t, tc.expected, result)
		})
	}
}
