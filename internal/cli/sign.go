package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/quill/internal/config"
	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	ethtypes "github.com/mrz1836/quill/internal/eth/types"
	"github.com/mrz1836/quill/internal/output"
)

// signCmd signs a transaction record.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a legacy transaction",
	Long: `Sign a legacy Ethereum transaction described by a JSON record.

The record is an object with any of nonce, gasPrice, gasLimit (or gas), to,
value and data. Integers are JSON numbers or 0x hex strings; a string
without 0x is rejected. to and data are hex. Missing fields are encoded
as empty.

The private key is read from QUILL_PRIVATE_KEY, or prompted for with hidden
input. The signature has no chain id (v is 27 or 28).`,
	Example: `  quill sign --tx tx.json
  cat tx.json | quill sign --tx -
  quill sign --tx tx.json --fields
  quill sign --tx tx.json --qr`,
	RunE: runSign,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	signTxPath string
	signStrict bool
	signFields bool
	signQR     bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.GroupID = "signing"

	signCmd.Flags().StringVar(&signTxPath, "tx", "-", "transaction JSON file, or - for stdin")
	signCmd.Flags().BoolVar(&signStrict, "strict", false, "reject record keys that are not transaction fields")
	signCmd.Flags().BoolVar(&signFields, "fields", false, "print the signed item list instead of the encoded hex")
	signCmd.Flags().BoolVar(&signQR, "qr", false, "also draw the signed transaction as a QR code")
}

// signResult is the JSON shape of a signed transaction.
type signResult struct {
	Raw    string   `json:"raw"`
	Hash   string   `json:"hash"`
	V      int      `json:"v"`
	R      string   `json:"r"`
	S      string   `json:"s"`
	Fields []string `json:"fields"`
}

func runSign(cmd *cobra.Command, _ []string) error {
	data, err := readInput(cmd.InOrStdin(), signTxPath)
	if err != nil {
		return err
	}
	record, err := ethtypes.RecordFromJSON(data)
	if err != nil {
		return err
	}
	if err := record.CheckIntegerStrings(); err != nil {
		return err
	}

	key, err := readPrivateKey()
	if err != nil {
		return err
	}

	if signStrict {
		cmdCtx.Config.Signing.StrictFields = true
	}

	tx, err := cmdCtx.Signer.Sign(record, key)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if isJSON(cmdCtx.Formatter) {
		if err := writeJSON(w, newSignResult(tx.Hex(), tx.HashHex(), tx.Signature(), tx.Fields())); err != nil {
			return err
		}
	} else {
		displaySignText(w, tx, signingMode(cmdCtx.Config, signFields))
	}

	if signQR && !output.RenderQR(w, tx.Hex(), output.DefaultQRConfig()) {
		output.Warn(cmd.ErrOrStderr(), "--qr needs a terminal on stdout; QR code skipped")
	}
	return nil
}

func newSignResult(raw, hash string, sig *ethcrypto.Signature, fields [][]byte) signResult {
	res := signResult{
		Raw:    raw,
		Hash:   hash,
		V:      int(sig.V),
		R:      hex0x(sig.R),
		S:      hex0x(sig.S),
		Fields: make([]string, len(fields)),
	}
	for i, f := range fields {
		res.Fields[i] = hex0x(f)
	}
	return res
}

// signingMode resolves the text output mode; --fields overrides the config.
func signingMode(c ConfigProvider, fieldsFlag bool) string {
	if fieldsFlag {
		return config.SigningOutputFields
	}
	return c.GetSigningOutput()
}

func displaySignText(w io.Writer, tx *ethtypes.SignedTx, mode string) {
	if mode != config.SigningOutputFields {
		outln(w, tx.Hex())
		return
	}

	names := signedFieldNames()
	table := output.NewTable("FIELD", "VALUE")
	for i, f := range tx.Fields() {
		table.AddRow(names[i], hex0x(f))
	}
	_ = table.Render(w)
}

// signedFieldNames lists the nine item names of a signed transaction.
func signedFieldNames() []string {
	schema := ethtypes.Schema()
	names := make([]string, 0, ethtypes.SignedFieldCount)
	for _, f := range schema {
		names = append(names, f.Name)
	}
	return append(names, "v", "r", "s")
}

// isJSON reports whether f renders JSON. A nil formatter means text.
func isJSON(f *output.Formatter) bool {
	return f != nil && f.IsJSON()
}

