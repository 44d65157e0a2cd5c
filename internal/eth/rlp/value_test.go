package rlp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	var zero Value
	assert.False(t, zero.IsList())
	assert.NotNil(t, zero.Bytes())
	assert.Equal(t, 0, zero.Len())
	assert.Nil(t, zero.Items())

	s := String([]byte("dog"))
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.Items())

	l := List(s, String(nil))
	assert.True(t, l.IsList())
	assert.Equal(t, 2, l.Len())
	assert.Nil(t, l.Bytes())

	assert.True(t, List().Equal(List(nil...)))
	assert.False(t, List().Equal(String(nil)))
	assert.False(t, List(s).Equal(List(s, s)))
}

func TestValueJSON(t *testing.T) {
	t.Parallel()

	tree := List(
		String(nil),
		String([]byte{0x52, 0x08}),
		List(String([]byte("cat")), List()),
	)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `["0x","0x5208",["0x636174",[]]]`, string(data))

	var decoded Value
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, tree.Equal(decoded))
}

func TestValueUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"5208"`), &v))
	assert.Equal(t, []byte{0x52, 0x08}, v.Bytes())

	require.NoError(t, json.Unmarshal([]byte(`[]`), &v))
	assert.True(t, v.IsList())
	assert.Equal(t, 0, v.Len())

	require.Error(t, json.Unmarshal([]byte(`42`), &v))
	require.Error(t, json.Unmarshal([]byte(`"0xzz"`), &v))
	require.Error(t, json.Unmarshal([]byte(`["0x01", {}]`), &v))
}
