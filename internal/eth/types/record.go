package ethtypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/agnivade/levenshtein"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

var (
	// ErrNotAMapping indicates a record that is null, a scalar or an array.
	ErrNotAMapping = errors.New("transaction record must be an object")

	// ErrUnsupportedValue indicates a record value that is neither a number nor a string.
	ErrUnsupportedValue = errors.New("value must be an integer or a hex string")

	// ErrNonIntegral indicates a number with a fractional part.
	ErrNonIntegral = errors.New("number must be an integer")

	// ErrUnprefixedInteger indicates an integer field given as a string without 0x.
	ErrUnprefixedInteger = errors.New("integer strings must be 0x hex; use a JSON number for decimal")
)

// maxSuggestionDistance is how far a misspelled key may be from a field name
// and still get a suggestion.
const maxSuggestionDistance = 3

// Record is a loosely typed transaction: record keys (aliases allowed) to values.
type Record map[string]Value

// resolve maps the record onto canonical field names.
// A canonical key takes precedence over an alias of the same field.
func (r Record) resolve() map[string]Value {
	resolved := make(map[string]Value, len(r))
	for _, key := range sortedKeys(r) {
		name, ok := CanonicalName(key)
		if !ok {
			continue
		}
		if _, seen := resolved[name]; seen && key != name {
			continue
		}
		resolved[name] = r[key]
	}
	return resolved
}

// UnknownFields returns the record keys that match no field or alias, sorted.
func (r Record) UnknownFields() []string {
	var unknown []string
	for _, key := range sortedKeys(r) {
		if _, ok := CanonicalName(key); !ok {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// CheckUnknownFields fails with ErrUnknownField for the first key that is not
// part of the schema, suggesting the closest field name.
func (r Record) CheckUnknownFields() error {
	unknown := r.UnknownFields()
	if len(unknown) == 0 {
		return nil
	}

	err := quillerr.WithDetails(quillerr.ErrUnknownField, map[string]string{"field": unknown[0]})
	if suggestion := SuggestField(unknown[0]); suggestion != "" {
		err = quillerr.WithSuggestion(err, fmt.Sprintf("did you mean %q?", suggestion))
	}
	return err
}

// CheckIntegerStrings fails with ErrInvalidInput for the first integer field
// given as a string without a 0x prefix. ParseValue reads every string as hex,
// so "21000" would otherwise be signed as 0x021000.
func (r Record) CheckIntegerStrings() error {
	for _, key := range sortedKeys(r) {
		name, ok := CanonicalName(key)
		if !ok || !isIntegerField(name) {
			continue
		}
		v := r[key]
		if v.Kind() != KindHex || v.hex == "" || hasHexPrefix(v.hex) {
			continue
		}
		return quillerr.WithDetails(
			quillerr.WithCause(quillerr.ErrInvalidInput, fmt.Errorf("%w: %q", ErrUnprefixedInteger, v.hex)),
			map[string]string{"field": key},
		)
	}
	return nil
}

func isIntegerField(name string) bool {
	for _, f := range schema {
		if f.Name == name {
			return f.Kind == FieldInteger
		}
	}
	return false
}

// SuggestField returns the accepted record key closest to input, or "" when
// none is within a small edit distance.
func SuggestField(input string) string {
	minDist := math.MaxInt
	var suggestion string

	for _, key := range sortedKeys(inputNames) {
		dist := levenshtein.ComputeDistance(input, key)
		if dist < minDist {
			minDist = dist
			suggestion = key
		}
	}

	if minDist <= maxSuggestionDistance {
		return suggestion
	}
	return ""
}

// ParseRecord converts loosely typed input into a Record. It accepts a Record,
// map[string]Value, map[string]string (all hex) or map[string]any as produced
// by encoding/json. Anything else fails with ErrInvalidInput.
func ParseRecord(input any) (Record, error) {
	switch m := input.(type) {
	case Record:
		return copyRecord(m), nil
	case map[string]Value:
		return copyRecord(m), nil
	case map[string]string:
		record := make(Record, len(m))
		for k, v := range m {
			record[k] = Hex(v)
		}
		return record, nil
	case map[string]any:
		record := make(Record, len(m))
		for _, k := range sortedKeys(m) {
			v, err := ParseValue(m[k])
			if err != nil {
				return nil, quillerr.WithDetails(
					quillerr.WithCause(quillerr.ErrInvalidInput, err),
					map[string]string{"field": k},
				)
			}
			record[k] = v
		}
		return record, nil
	default:
		return nil, quillerr.WithDetails(
			quillerr.WithCause(quillerr.ErrInvalidInput, ErrNotAMapping),
			map[string]string{"type": fmt.Sprintf("%T", input)},
		)
	}
}

// RecordFromJSON parses a JSON object into a Record. Numbers keep full precision.
func RecordFromJSON(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, quillerr.WithCause(quillerr.ErrInvalidInput, err)
	}
	if dec.More() {
		return nil, quillerr.WithCause(quillerr.ErrInvalidInput, errors.New("unexpected data after JSON object"))
	}
	return ParseRecord(raw)
}

// ParseValue converts a single loosely typed input into a Value.
// nil is absent, strings are hex, and numbers must be integral.
func ParseValue(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Absent(), nil
	case Value:
		return x, nil
	case string:
		return Hex(x), nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		return Uint64(uint64(x)), nil
	case uint8:
		return Uint64(uint64(x)), nil
	case uint16:
		return Uint64(uint64(x)), nil
	case uint32:
		return Uint64(uint64(x)), nil
	case uint64:
		return Uint64(x), nil
	case *big.Int:
		return Int(x), nil
	case json.Number:
		return parseNumber(string(x))
	case float64:
		return parseFloat(x)
	default:
		return Value{}, fmt.Errorf("%w: got %T", ErrUnsupportedValue, raw)
	}
}

func parseNumber(s string) (Value, error) {
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return Int(n), nil
	}
	f, _, err := big.ParseFloat(s, 10, 512, big.ToNearestEven)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedValue, s)
	}
	if !f.IsInt() {
		return Value{}, fmt.Errorf("%w: %s", ErrNonIntegral, s)
	}
	n, _ := f.Int(nil)
	return Int(n), nil
}

func parseFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Value{}, fmt.Errorf("%w: %v", ErrNonIntegral, f)
	}
	n, _ := big.NewFloat(f).Int(nil)
	return Int(n), nil
}

func copyRecord(m map[string]Value) Record {
	record := make(Record, len(m))
	for k, v := range m {
		record[k] = v
	}
	return record
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
