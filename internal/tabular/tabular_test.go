package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSVBasic(t *testing.T) {
	data, err := FromCSV(strings.NewReader("id,name\n1,Alice\n2,Bob\n"))
	require.NoError(t, err)
	require.Len(t, data.Columns, 2)
	assert.Equal(t, "id", data.Columns[0].Name)
	assert.Equal(t, TypeInteger, data.Columns[0].Inferred)
	assert.True(t, data.Columns[0].Values[0].Equal(Int(1)))
	assert.True(t, data.Columns[1].Values[1].Equal(Str("Bob")))
}

func TestFromCSVEmptyFieldIsEmptyString(t *testing.T) {
	data, err := FromCSV(strings.NewReader("x\na\n\nb\n"))
	require.NoError(t, err)
	require.Len(t, data.Columns, 1)
	require.Len(t, data.Columns[0].Values, 3)
	assert.True(t, data.Columns[0].Values[1].Equal(Str("")))
}

func TestFromCSVLeadingZeroStaysString(t *testing.T) {
	data, err := FromCSV(strings.NewReader("code\n007\n042\n"))
	require.NoError(t, err)
	assert.True(t, data.Columns[0].Values[0].Equal(Str("007")))
	assert.True(t, data.Columns[0].Values[1].Equal(Str("042")))
}

func TestFromCSVBooleanDetection(t *testing.T) {
	data, err := FromCSV(strings.NewReader("flag\ntrue\nfalse\n"))
	require.NoError(t, err)
	assert.True(t, data.Columns[0].Values[0].Equal(Bool(true)))
	assert.True(t, data.Columns[0].Values[1].Equal(Bool(false)))
}

func TestCSVRoundTrip(t *testing.T) {
	in := "id,name\n1,Alice\n2,Bob\n"
	data, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ToCSV(data, &buf))
	assert.Equal(t, in, buf.String())
}

func TestFromJSONNestedFlattening(t *testing.T) {
	in := `[{"a":{"b":1}},{"a":{"b":2}},{"a":{"b":3}}]`
	data, err := FromJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, data.Columns, 1)
	assert.Equal(t, "a.b", data.Columns[0].Name)
	assert.True(t, data.Columns[0].Values[0].Equal(Int(1)))
	assert.True(t, data.Columns[0].Values[2].Equal(Int(3)))
}

func TestFromJSONMissingKeysYieldNull(t *testing.T) {
	in := `[{"a":1,"b":2},{"a":3}]`
	data, err := FromJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, data.Columns, 2)
	assert.Equal(t, "a", data.Columns[0].Name)
	assert.Equal(t, "b", data.Columns[1].Name)
	assert.Equal(t, KindNull, data.Columns[1].Values[1].Kind)
}

func TestFromJSONKeyOrderIsFirstSeen(t *testing.T) {
	in := `[{"z":1,"a":2},{"m":3}]`
	data, err := FromJSON(strings.NewReader(in))
	require.NoError(t, err)
	names := data.ColumnNames()
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestJSONRoundTripNested(t *testing.T) {
	in := `[{"a":{"b":1}},{"a":{"b":2}}]`
	data, err := FromJSON(strings.NewReader(in))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ToJSON(data, &buf))

	data2, err := FromJSON(&buf)
	require.NoError(t, err)
	require.Len(t, data2.Columns, 1)
	assert.Equal(t, "a.b", data2.Columns[0].Name)
	assert.True(t, data2.Columns[0].Values[0].Equal(Int(1)))
}

func TestInferTypeAllNullIsMixed(t *testing.T) {
	c := &Column{Values: []Value{Null, Null}}
	c.InferType()
	assert.Equal(t, TypeMixed, c.Inferred)
}

func TestInferTypeConflictIsMixed(t *testing.T) {
	c := &Column{Values: []Value{Int(1), Str("x")}}
	c.InferType()
	assert.Equal(t, TypeMixed, c.Inferred)
}

func TestInferTypeToleratesNulls(t *testing.T) {
	c := &Column{Values: []Value{Int(1), Null, Int(3)}}
	c.InferType()
	assert.Equal(t, TypeInteger, c.Inferred)
}
