package tabular

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_JSONRoundTrip(t *testing.T) {
	row := Row{
		"s": TextCell("hello"),
		"n": NumberCell(12.5),
		"b": BoolCell(true),
		"e": EmptyCell(),
	}

	b, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"hello","n":12.5,"b":true,"e":""}`, string(b))

	var back Row
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, row, back)
}

func TestCell_UnmarshalNullIsEmpty(t *testing.T) {
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.True(t, c.IsEmpty())
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "hello", TextCell("hello").String())
	assert.Equal(t, "12.5", NumberCell(12.5).String())
	assert.Equal(t, "2023", NumberCell(2023).String())
	assert.Equal(t, "true", BoolCell(true).String())
	assert.Equal(t, "", EmptyCell().String())
}

func TestTextCell_EmptyStringIsSentinel(t *testing.T) {
	assert.True(t, TextCell("").IsEmpty())
}
