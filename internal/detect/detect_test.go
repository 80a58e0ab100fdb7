package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"als/internal/als"
	"als/internal/tabular"
)

func ints(vs ...int64) []tabular.Value {
	out := make([]tabular.Value, len(vs))
	for i, v := range vs {
		out[i] = tabular.Int(v)
	}
	return out
}

func totalCost(stream als.ColumnStream) int {
	total := 0
	for _, op := range stream.Operators {
		total += als.OperatorCost(op)
	}
	if len(stream.Operators) > 1 {
		total += len(stream.Operators) - 1
	}
	return total
}

func rawOnlyCost(values []tabular.Value) int {
	total := 0
	for _, v := range values {
		total += als.OperatorCost(als.Raw(als.EncodeToken(v)))
	}
	if len(values) > 1 {
		total += len(values) - 1
	}
	return total
}

func TestDetectColumnRangeExample(t *testing.T) {
	stream := DetectColumn(ints(1, 2, 3, 4, 5), 3, nil)
	require.Len(t, stream.Operators, 1)
	op := stream.Operators[0]
	assert.Equal(t, als.OpRange, op.Kind)
	assert.Equal(t, int64(1), op.Start)
	assert.Equal(t, int64(5), op.End)
	assert.Equal(t, int64(1), op.Step)
}

func TestDetectColumnToggleExample(t *testing.T) {
	values := []tabular.Value{tabular.Bool(true), tabular.Bool(false), tabular.Bool(true), tabular.Bool(false)}
	stream := DetectColumn(values, 3, nil)
	require.Len(t, stream.Operators, 1)
	op := stream.Operators[0]
	assert.Equal(t, als.OpToggle, op.Kind)
	assert.Equal(t, "true", op.ToggleA)
	assert.Equal(t, "false", op.ToggleB)
	assert.Equal(t, 4, op.Count)
}

func TestDetectColumnRepeatBecomesMultiply(t *testing.T) {
	values := []tabular.Value{tabular.Str("a"), tabular.Str("a"), tabular.Str("a"), tabular.Str("a")}
	stream := DetectColumn(values, 3, nil)
	require.Len(t, stream.Operators, 1)
	op := stream.Operators[0]
	assert.Equal(t, als.OpMultiply, op.Kind)
	assert.Equal(t, 4, op.Count)
	assert.Equal(t, als.OpRaw, op.Inner.Kind)
}

func TestDetectColumnShortRunStaysRaw(t *testing.T) {
	values := []tabular.Value{tabular.Str("a"), tabular.Str("a"), tabular.Str("b")}
	stream := DetectColumn(values, 3, nil)
	require.Len(t, stream.Operators, 3)
	for _, op := range stream.Operators {
		assert.Equal(t, als.OpRaw, op.Kind)
	}
}

func TestDetectColumnCombinedRepeatedRange(t *testing.T) {
	stream := DetectColumn(ints(1, 2, 3, 1, 2, 3), 3, nil)
	require.Len(t, stream.Operators, 1)
	op := stream.Operators[0]
	assert.Equal(t, als.OpMultiply, op.Kind)
	assert.Equal(t, 2, op.Count)
	require.NotNil(t, op.Inner)
	assert.Equal(t, als.OpRange, op.Inner.Kind)
	assert.Equal(t, int64(1), op.Inner.Start)
	assert.Equal(t, int64(3), op.Inner.End)
}

func TestDetectColumnCombinedRepeatedToggle(t *testing.T) {
	values := []tabular.Value{
		tabular.Bool(true), tabular.Bool(false), tabular.Bool(true), tabular.Bool(false),
		tabular.Bool(true), tabular.Bool(false), tabular.Bool(true), tabular.Bool(false),
	}
	stream := DetectColumn(values, 3, nil)
	// a single run-length-8 Toggle covers the whole column for less cost
	// than Multiply{Toggle{...,4},2}, so the optimizer keeps the plain
	// Toggle even though Combined also proposes a candidate here.
	require.Len(t, stream.Operators, 1)
	assert.Equal(t, als.OpToggle, stream.Operators[0].Kind)
}

func TestDetectColumnDictRef(t *testing.T) {
	values := []tabular.Value{tabular.Str("active"), tabular.Str("inactive"), tabular.Str("active")}
	dict := map[string]int{"active": 0, "inactive": 1}
	lookup := func(s string) (int, bool) { i, ok := dict[s]; return i, ok }

	stream := DetectColumn(values, 3, lookup)
	require.Len(t, stream.Operators, 3)
	assert.Equal(t, als.OpDictRef, stream.Operators[0].Kind)
	assert.Equal(t, 0, stream.Operators[0].DictIndex)
	assert.Equal(t, als.OpDictRef, stream.Operators[1].Kind)
	assert.Equal(t, 1, stream.Operators[1].DictIndex)
}

func TestDetectColumnNeverRegressesVsRaw(t *testing.T) {
	values := []tabular.Value{
		tabular.Int(7), tabular.Str("x"), tabular.Int(3), tabular.Int(3), tabular.Bool(true),
		tabular.Bool(false), tabular.Str("y"), tabular.Null,
	}
	stream := DetectColumn(values, 3, nil)
	assert.LessOrEqual(t, totalCost(stream), rawOnlyCost(values))
}

func TestDetectColumnExpandsBackToOriginalValues(t *testing.T) {
	values := ints(1, 2, 3, 1, 2, 3)
	stream := DetectColumn(values, 3, nil)
	expanded, err := als.ExpandStream(stream, nil, 0)
	require.NoError(t, err)
	require.Len(t, expanded, len(values))
	for i, v := range values {
		assert.True(t, v.Equal(expanded[i]))
	}
}
