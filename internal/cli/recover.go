package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// recoverCmd recovers a signer's public key.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover the public key that signed a transaction",
	Long: `Recover the 64-byte uncompressed public key (X || Y) from a raw
transaction and a detached signature.

Only the first six items of the raw transaction are hashed, so either the
unsigned encoding or a fully signed transaction may be given. The signature
is always taken from --v, --r and --s, never from the raw transaction.`,
	Example: `  quill recover --raw 0xdc80...8080 --v 27 --r 0x0d9a... --s 0x4c81...
  echo 0xf85f... | quill recover --raw - --v 27 --r 0x0d9a... --s 0x4c81...`,
	RunE: runRecover,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	recoverRaw string
	recoverV   int
	recoverR   string
	recoverS   string
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(recoverCmd)
	recoverCmd.GroupID = "signing"

	recoverCmd.Flags().StringVar(&recoverRaw, "raw", "", "raw transaction hex, or - for stdin (required)")
	recoverCmd.Flags().IntVar(&recoverV, "v", 0, "signature v, 27 or 28 (required)")
	recoverCmd.Flags().StringVar(&recoverR, "r", "", "signature r as hex (required)")
	recoverCmd.Flags().StringVar(&recoverS, "s", "", "signature s as hex (required)")

	for _, name := range []string{"raw", "v", "r", "s"} {
		_ = recoverCmd.MarkFlagRequired(name)
	}
}

type recoverResult struct {
	PublicKey string `json:"public_key"`
}

func runRecover(cmd *cobra.Command, _ []string) error {
	rawHex := recoverRaw
	if rawHex == "-" {
		data, err := readInput(cmd.InOrStdin(), "-")
		if err != nil {
			return err
		}
		rawHex = strings.TrimSpace(string(data))
	}

	r, err := parseHexArg("r", recoverR)
	if err != nil {
		return err
	}
	s, err := parseHexArg("s", recoverS)
	if err != nil {
		return err
	}

	pub, err := cmdCtx.Signer.RecoverHex(rawHex, recoverV, r, s)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if isJSON(cmdCtx.Formatter) {
		return writeJSON(w, recoverResult{PublicKey: hex0x(pub)})
	}
	outln(w, hex0x(pub))
	return nil
}
