package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	"github.com/mrz1836/quill/internal/output"
)

// signHashCmd signs a precomputed 32-byte hash.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var signHashCmd = &cobra.Command{
	Use:   "sign-hash <hash>",
	Short: "Sign a raw 32-byte hash",
	Long: `Sign a precomputed 32-byte hash with no message prefix.

Prints v, r and s, and the RLP encoding of the list [v, r, s].`,
	Example: `  quill sign-hash 0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8`,
	Args: cobra.ExactArgs(1),
	RunE: runSignHash,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(signHashCmd)
	signHashCmd.GroupID = "signing"
}

// signatureResult is the JSON shape of a detached signature.
type signatureResult struct {
	V   int    `json:"v"`
	R   string `json:"r"`
	S   string `json:"s"`
	RLP string `json:"rlp"`
}

func runSignHash(cmd *cobra.Command, args []string) error {
	hash, err := parseHexArg("hash", args[0])
	if err != nil {
		return err
	}

	key, err := readPrivateKey()
	if err != nil {
		return err
	}

	sig, err := cmdCtx.Signer.SignHash(hash, key)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if isJSON(cmdCtx.Formatter) {
		return writeJSON(w, newSignatureResult(sig))
	}
	displaySignatureText(w, sig)
	return nil
}

func newSignatureResult(sig *ethcrypto.Signature) signatureResult {
	return signatureResult{
		V:   int(sig.V),
		R:   hex0x(sig.R),
		S:   hex0x(sig.S),
		RLP: sig.Hex(),
	}
}

func displaySignatureText(w io.Writer, sig *ethcrypto.Signature) {
	res := newSignatureResult(sig)
	table := output.NewTable()
	table.SetNoHeader(true)
	table.AddRow("v:", strconv.Itoa(res.V))
	table.AddRow("r:", res.R)
	table.AddRow("s:", res.S)
	table.AddRow("rlp:", res.RLP)
	_ = table.Render(w)
}
