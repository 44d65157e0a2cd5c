package rlp

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidJSONNode indicates a JSON tree node that is neither a hex string nor an array.
var ErrInvalidJSONNode = errors.New("rlp: JSON node must be a hex string or an array")

// Value is a node of an RLP tree: either a byte string or an ordered list of nodes.
// The zero Value is the empty byte string.
type Value struct {
	str    []byte
	list   []Value
	isList bool
}

// String creates a byte-string node.
func String(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{str: b}
}

// List creates a list node from the given items.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{list: items, isList: true}
}

// StringList creates a list node whose items are all byte strings.
func StringList(items [][]byte) Value {
	values := make([]Value, len(items))
	for i, item := range items {
		values[i] = String(item)
	}
	return List(values...)
}

// IsList reports whether the node is a list.
func (v Value) IsList() bool {
	return v.isList
}

// Bytes returns the byte string of a string node, or nil for a list.
func (v Value) Bytes() []byte {
	if v.isList {
		return nil
	}
	if v.str == nil {
		return []byte{}
	}
	return v.str
}

// Items returns the children of a list node, or nil for a byte string.
func (v Value) Items() []Value {
	if !v.isList {
		return nil
	}
	return v.list
}

// Len returns the number of bytes in a string node or items in a list node.
func (v Value) Len() int {
	if v.isList {
		return len(v.list)
	}
	return len(v.str)
}

// Equal reports whether two trees have identical shape and content.
func (v Value) Equal(other Value) bool {
	if v.isList != other.isList {
		return false
	}
	if !v.isList {
		return bytes.Equal(v.str, other.str)
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if !v.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON renders byte strings as 0x-prefixed hex and lists as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.isList {
		return json.Marshal("0x" + hex.EncodeToString(v.str))
	}
	items := v.list
	if items == nil {
		items = []Value{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON accepts the format produced by MarshalJSON.
// Hex strings may omit the 0x prefix.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidJSONNode
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return err
		}
		*v = String(b)
		return nil
	case '[':
		var items []Value
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = List(items...)
		return nil
	default:
		return ErrInvalidJSONNode
	}
}
