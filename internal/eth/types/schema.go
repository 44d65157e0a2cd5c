package ethtypes

// FieldKind describes how a field's input is converted to bytes.
type FieldKind uint8

// Field kinds.
const (
	// FieldInteger is a non-negative integer carried in minimal big-endian form.
	FieldInteger FieldKind = iota
	// FieldBytes is a hex-encoded byte string carried verbatim.
	FieldBytes
)

// Field describes one position of the legacy transaction list.
type Field struct {
	Name string
	Kind FieldKind
	// Length, when non-zero, is the only permitted non-empty length.
	Length int
	// MaxLength, when non-zero, bounds the length after leading zeros are stripped.
	MaxLength int
}

// UnsignedFieldCount is the number of items in an unsigned legacy transaction.
const UnsignedFieldCount = 6

// SignedFieldCount is UnsignedFieldCount plus v, r and s.
const SignedFieldCount = UnsignedFieldCount + 3

// maxIntegerLength bounds every integer field to 256 bits.
const maxIntegerLength = 32

//nolint:gochecknoglobals // Fixed wire layout
var schema = [UnsignedFieldCount]Field{
	{Name: "nonce", Kind: FieldInteger, MaxLength: maxIntegerLength},
	{Name: "gasPrice", Kind: FieldInteger, MaxLength: maxIntegerLength},
	{Name: "gasLimit", Kind: FieldInteger, MaxLength: maxIntegerLength},
	{Name: "to", Kind: FieldBytes, Length: 20},
	{Name: "value", Kind: FieldInteger, MaxLength: maxIntegerLength},
	{Name: "data", Kind: FieldBytes},
}

// inputNames maps every accepted record key to its canonical field name.
//
//nolint:gochecknoglobals // Lookup table
var inputNames = map[string]string{
	"nonce":    "nonce",
	"gasPrice": "gasPrice",
	"gasLimit": "gasLimit",
	"gas":      "gasLimit",
	"to":       "to",
	"value":    "value",
	"data":     "data",
}

// Schema returns the legacy transaction fields in wire order.
func Schema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema[:])
	return out
}

// CanonicalName resolves a record key, including aliases, to a schema field name.
func CanonicalName(key string) (string, bool) {
	name, ok := inputNames[key]
	return name, ok
}

