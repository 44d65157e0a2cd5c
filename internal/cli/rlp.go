package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/quill/internal/eth/rlp"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// rlpCmd is the parent command for raw RLP operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rlpCmd = &cobra.Command{
	Use:   "rlp",
	Short: "Encode and decode RLP",
	Long: `Convert between RLP and a JSON tree in which byte strings are 0x hex
strings and lists are arrays.`,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rlpDecodeCmd = &cobra.Command{
	Use:   "decode <hex|->",
	Short: "Decode RLP into a JSON tree",
	Long: `Decode a single RLP item. Non-canonical encodings, truncated input and
trailing bytes are rejected.`,
	Example: `  quill rlp decode 0xc88363617483646f67`,
	Args: cobra.ExactArgs(1),
	RunE: runRLPDecode,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var rlpEncodeCmd = &cobra.Command{
	Use:   "encode <json|->",
	Short: "Encode a JSON tree as RLP",
	Long: `Encode a JSON tree of hex strings and arrays as RLP.`,
	Example: `  quill rlp encode '["0x636174", "0x646f67"]'`,
	Args: cobra.ExactArgs(1),
	RunE: runRLPEncode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(rlpCmd)
	rlpCmd.GroupID = "encoding"
	rlpCmd.AddCommand(rlpDecodeCmd)
	rlpCmd.AddCommand(rlpEncodeCmd)
}

type rlpEncodeResult struct {
	RLP string `json:"rlp"`
}

// argOrStdin returns arg, or all of stdin when arg is "-".
func argOrStdin(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := readInput(cmd.InOrStdin(), "-")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func runRLPDecode(cmd *cobra.Command, args []string) error {
	arg, err := argOrStdin(cmd, args[0])
	if err != nil {
		return err
	}
	input, err := parseHexArg("input", arg)
	if err != nil {
		return err
	}

	v, err := rlp.Decode(input)
	if err != nil {
		return err
	}

	// The tree is JSON in both output formats.
	return writeJSON(cmd.OutOrStdout(), v)
}

func runRLPEncode(cmd *cobra.Command, args []string) error {
	arg, err := argOrStdin(cmd, args[0])
	if err != nil {
		return err
	}

	var v rlp.Value
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return quillerr.WithSuggestion(
			quillerr.WithCause(quillerr.ErrInvalidInput, err),
			`use hex strings for byte strings and arrays for lists, e.g. ["0x01", []]`,
		)
	}

	encoded := hex0x(rlp.EncodeValue(v))
	w := cmd.OutOrStdout()
	if isJSON(cmdCtx.Formatter) {
		return writeJSON(w, rlpEncodeResult{RLP: encoded})
	}
	outln(w, encoded)
	return nil
}
