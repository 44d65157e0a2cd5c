package rlp

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	oneEther := new(big.Int).SetBytes(hexBytes("0de0b6b3a7640000"))

	tests := []struct {
		name string
		in   any
		want string
	}{
		// byte strings
		{"zero byte", []byte{0x00}, "00"},
		{"0x7f is its own encoding", []byte{0x7f}, "7f"},
		{"0x80 needs a prefix", []byte{0x80}, "8180"},
		{"empty string", []byte{}, "80"},
		{"dog", []byte("dog"), "83646f67"},
		{"55 bytes stays short", make([]byte, 55), "b7" + strings.Repeat("00", 55)},

		// integers
		{"uint64 zero", uint64(0), "80"},
		{"uint64 one", uint64(1), "01"},
		{"uint64 128", uint64(128), "8180"},
		{"uint64 256", uint64(256), "820100"},
		{"gas limit 21000", uint64(21000), "825208"},
		{"big zero", big.NewInt(0), "80"},
		{"big nil", (*big.Int)(nil), "80"},
		{"big 127", big.NewInt(127), "7f"},
		{"big 1024", big.NewInt(1024), "820400"},
		{"one ether", oneEther, "880de0b6b3a7640000"},

		// lists
		{"empty list", []any{}, "c0"},
		{"cat dog", []any{[]byte("cat"), []byte("dog")}, "c88363617483646f67"},
		{"nested empties", []any{[]any{}, []any{[]any{}}}, "c3c0c1c0"},
		{"byte string list", [][]byte{[]byte("cat"), []byte("dog")}, "c88363617483646f67"},
		{"value tree", List(String([]byte("cat")), List()), "c583636174c0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, hex.EncodeToString(Encode(tc.in)))
		})
	}
}

func TestEncode_LongForms(t *testing.T) {
	t.Parallel()

	// 56 bytes moves to the long form with one size byte.
	encoded := Encode(bytes.Repeat([]byte{0xaa}, 56))
	assert.Equal(t, "b838", hex.EncodeToString(encoded[:2]))
	assert.Len(t, encoded, 58)

	encoded = Encode(make([]byte, 1024))
	assert.Equal(t, "b90400", hex.EncodeToString(encoded[:3]))
	assert.Len(t, encoded, 1027)

	lorem := []byte("Lorem ipsum dolor sit amet, consectetur adipisicing elit")
	encoded = Encode([]any{lorem})
	assert.Equal(t, "f83ab838", hex.EncodeToString(encoded[:4]))
	assert.Len(t, encoded, 60)
}

func TestEncode_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	input := []byte{0x05}
	encoded := Encode(input)
	encoded[0] = 0x06
	assert.Equal(t, byte(0x05), input[0])
}

func TestEncode_Unsupported(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Encode("not bytes"))
	assert.Nil(t, Encode(42))
	assert.Nil(t, Encode([]any{[]byte("ok"), 3.14}))
}

func TestEncode_LegacySigningPreimage(t *testing.T) {
	t.Parallel()

	// EIP-155 example preimage (chain id 1) built as a mixed list.
	to := hexBytes("3535353535353535353535353535353535353535")
	value := new(big.Int).SetBytes(hexBytes("0de0b6b3a7640000"))
	encoded := Encode([]any{uint64(9), big.NewInt(20000000000), uint64(21000), to, value, []byte{}, uint64(1), uint64(0), uint64(0)})

	assert.Equal(t,
		"ec098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080018080",
		hex.EncodeToString(encoded))
}

func TestEncodeList_UnsignedRecord(t *testing.T) {
	t.Parallel()

	fields := [][]byte{{}, {0x01}, {0x52, 0x08}, hexBytes("3535353535353535353535353535353535353535"), {}, {}}
	want := "dc80018252089435353535353535353535353535353535353535358080"

	assert.Equal(t, want, hex.EncodeToString(EncodeList(fields)))
	assert.Equal(t, want, hex.EncodeToString(EncodeValue(StringList(fields))))
	assert.Equal(t, "c0", hex.EncodeToString(EncodeList(nil)))
}

func TestEncodeValue_SetTheoreticThree(t *testing.T) {
	t.Parallel()

	// [ [], [[]], [ [], [[]] ] ]
	three := List(
		List(),
		List(List()),
		List(List(), List(List())),
	)
	assert.Equal(t, "c7c0c1c0c3c0c1c0", hex.EncodeToString(EncodeValue(three)))
}

func hexBytes(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}
