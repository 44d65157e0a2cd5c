// Package ethtypes provides the legacy (pre-EIP-2718) Ethereum transaction
// schema: field layout, input conversion, validation and the unsigned and
// signed forms of a transaction.
package ethtypes

import (
	"encoding/hex"
	"errors"
	"strconv"

	ethcrypto "github.com/mrz1836/quill/internal/eth/crypto"
	"github.com/mrz1836/quill/internal/eth/rlp"
	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// ErrInvalidHexValue indicates a field value that is not valid hex.
var ErrInvalidHexValue = errors.New("value is not valid hex")

// BuildUnsignedFields converts a record into the six unsigned transaction
// items in wire order. Absent fields become empty byte strings.
// Fields are validated in order and the first failure is returned.
func BuildUnsignedFields(record Record) ([][]byte, error) {
	if record == nil {
		return nil, quillerr.WithCause(quillerr.ErrInvalidInput, ErrNotAMapping)
	}

	resolved := record.resolve()
	fields := make([][]byte, len(schema))
	for i, field := range schema {
		b, err := convertField(field, resolved[field.Name])
		if err != nil {
			return nil, err
		}
		if err := validateField(field, b); err != nil {
			return nil, err
		}
		fields[i] = b
	}
	return fields, nil
}

func convertField(field Field, v Value) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if field.Kind == FieldInteger {
		b, err = v.integerBytes()
	} else {
		b, err = v.byteString()
	}
	if err == nil {
		return b, nil
	}

	var hexErr hex.InvalidByteError
	if errors.As(err, &hexErr) {
		err = errors.Join(ErrInvalidHexValue, err)
	}
	return nil, quillerr.WithDetails(
		quillerr.WithCause(quillerr.ErrInvalidInput, err),
		map[string]string{"field": field.Name},
	)
}

func validateField(field Field, b []byte) error {
	if field.Length > 0 && len(b) != 0 && len(b) != field.Length {
		return quillerr.WithDetails(quillerr.ErrInvalidFieldLength, map[string]string{
			"field":    field.Name,
			"expected": strconv.Itoa(field.Length),
			"actual":   strconv.Itoa(len(b)),
		})
	}
	if field.MaxLength > 0 && len(rlp.StripLeadingZeros(b)) > field.MaxLength {
		return quillerr.WithDetails(quillerr.ErrFieldTooLarge, map[string]string{
			"field": field.Name,
			"max":   strconv.Itoa(field.MaxLength),
		})
	}
	return nil
}

// UnsignedTx is a validated legacy transaction without a signature.
type UnsignedTx struct {
	fields [][]byte
}

// NewUnsignedTx builds and validates an unsigned transaction from a record.
func NewUnsignedTx(record Record) (*UnsignedTx, error) {
	fields, err := BuildUnsignedFields(record)
	if err != nil {
		return nil, err
	}
	return &UnsignedTx{fields: fields}, nil
}

// UnsignedTxFromFields wraps already-canonical items taken by position,
// as found in a decoded raw transaction. Extra items are ignored.
func UnsignedTxFromFields(items [][]byte) (*UnsignedTx, error) {
	if len(items) < UnsignedFieldCount {
		return nil, quillerr.WithDetails(quillerr.ErrMalformedEncoding, map[string]string{
			"items":    strconv.Itoa(len(items)),
			"expected": strconv.Itoa(UnsignedFieldCount),
		})
	}
	fields := make([][]byte, UnsignedFieldCount)
	copy(fields, items[:UnsignedFieldCount])
	return &UnsignedTx{fields: fields}, nil
}

// Fields returns the six items in wire order.
func (tx *UnsignedTx) Fields() [][]byte {
	return copyFields(tx.fields)
}

// Encoded returns the RLP encoding of the unsigned item list.
func (tx *UnsignedTx) Encoded() []byte {
	return rlp.EncodeList(tx.fields)
}

// SigningHash returns keccak-256 of the unsigned encoding. No chain id is mixed in.
func (tx *UnsignedTx) SigningHash() []byte {
	return ethcrypto.Keccak256(tx.Encoded())
}

// WithSignature appends v, r and s to produce the signed transaction.
func (tx *UnsignedTx) WithSignature(sig *ethcrypto.Signature) *SignedTx {
	fields := make([][]byte, 0, SignedFieldCount)
	fields = append(fields, tx.fields...)
	fields = append(fields, sig.Fields()...)
	return &SignedTx{fields: fields, sig: sig}
}

// SignedTx is a legacy transaction followed by its [v, r, s] signature items.
type SignedTx struct {
	fields [][]byte
	sig    *ethcrypto.Signature
}

// Fields returns the nine items in wire order.
func (tx *SignedTx) Fields() [][]byte {
	return copyFields(tx.fields)
}

// Signature returns the signature items.
func (tx *SignedTx) Signature() *ethcrypto.Signature {
	return tx.sig
}

// Encoded returns the RLP encoding of the signed item list.
func (tx *SignedTx) Encoded() []byte {
	return rlp.EncodeList(tx.fields)
}

// Hex returns Encoded as 0x-prefixed lowercase hex, ready for broadcast.
func (tx *SignedTx) Hex() string {
	return "0x" + hex.EncodeToString(tx.Encoded())
}

// Hash returns the transaction hash (keccak256 of the RLP-encoded signed tx).
func (tx *SignedTx) Hash() []byte {
	return ethcrypto.Keccak256(tx.Encoded())
}

// HashHex returns the transaction hash as a hex string with 0x prefix.
func (tx *SignedTx) HashHex() string {
	return "0x" + hex.EncodeToString(tx.Hash())
}

func copyFields(fields [][]byte) [][]byte {
	out := make([][]byte, len(fields))
	for i, f := range fields {
		out[i] = append([]byte{}, f...)
	}
	return out
}
