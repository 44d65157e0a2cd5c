package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

func TestRunRLPDecode(t *testing.T) {
	tests := []struct {
		name  string
		arg   string
		stdin string
		want  string
	}{
		{
			name: "list of strings",
			arg:  "0xc88363617483646f67",
			want: "[\n  \"0x636174\",\n  \"0x646f67\"\n]\n",
		},
		{
			name: "single byte",
			arg:  "0f",
			want: "\"0x0f\"\n",
		},
		{
			name: "empty list",
			arg:  "0xc0",
			want: "[]\n",
		},
		{
			name:  "stdin",
			arg:   "-",
			stdin: "0xc3c0c1c0\n",
			want:  "[\n  [],\n  [\n    []\n  ]\n]\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, testCleanup := setupTestEnv(t)
			defer testCleanup()

			cmd, buf := newTestCmd(tc.stdin)
			require.NoError(t, runRLPDecode(cmd, []string{tc.arg}))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRunRLPDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr error
	}{
		{"not hex", "0xgg", quillerr.ErrInvalidInput},
		{"empty", "0x", quillerr.ErrMalformedEncoding},
		{"non canonical single byte", "0x8100", quillerr.ErrMalformedEncoding},
		{"trailing bytes", "0x0102", quillerr.ErrMalformedEncoding},
		{"truncated", "0x83646f", quillerr.ErrMalformedEncoding},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, testCleanup := setupTestEnv(t)
			defer testCleanup()

			cmd, _ := newTestCmd("")
			err := runRLPDecode(cmd, []string{tc.arg})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRunRLPEncode(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"list of strings", `["0x636174", "0x646f67"]`, "0xc88363617483646f67"},
		{"empty string", `"0x"`, "0x80"},
		{"no prefix", `"0f"`, "0x0f"},
		{"nested lists", `[[], [[]]]`, "0xc3c0c1c0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, testCleanup := setupTestEnv(t)
			defer testCleanup()

			cmd, buf := newTestCmd("")
			require.NoError(t, runRLPEncode(cmd, []string{tc.arg}))
			assert.Equal(t, tc.want+"\n", buf.String())
		})
	}
}

func TestRunRLPEncode_JSONOutput(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	useJSON(t)

	cmd, buf := newTestCmd(`["0x636174", "0x646f67"]`)
	require.NoError(t, runRLPEncode(cmd, []string{"-"}))

	var res rlpEncodeResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "0xc88363617483646f67", res.RLP)
}

func TestRunRLPEncode_InvalidJSON(t *testing.T) {
	tests := []string{
		`{"a": 1}`,
		`[1, 2]`,
		`"0xzz"`,
		`not json`,
	}

	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			_, testCleanup := setupTestEnv(t)
			defer testCleanup()

			cmd, _ := newTestCmd("")
			err := runRLPEncode(cmd, []string{arg})
			require.ErrorIs(t, err, quillerr.ErrInvalidInput)
		})
	}
}

func TestRLPRoundTrip(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	cmd, decoded := newTestCmd("")
	require.NoError(t, runRLPDecode(cmd, []string{testSigned}))

	cmd, encoded := newTestCmd(decoded.String())
	require.NoError(t, runRLPEncode(cmd, []string{"-"}))
	assert.Equal(t, testSigned+"\n", encoded.String())
}
