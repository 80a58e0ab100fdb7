package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"als/internal/tabular"
)

func column(name string, vals ...tabular.Value) *tabular.Column {
	c := &tabular.Column{Name: name, Values: vals}
	c.InferType()
	return c
}

func TestBuildPromotesRepeatedStrings(t *testing.T) {
	t1 := &tabular.TabularData{Columns: []*tabular.Column{
		column("s",
			tabular.Str("active"), tabular.Str("inactive"),
			tabular.Str("active"), tabular.Str("inactive"), tabular.Str("pending"),
		),
	}}
	built, _ := Build(t1, 1024)
	require.NotEmpty(t, built)
	assert.Contains(t, built, "active")
	assert.Contains(t, built, "inactive")
}

func TestBuildReturnsNilWhenNothingRepeats(t *testing.T) {
	t1 := &tabular.TabularData{Columns: []*tabular.Column{
		column("s", tabular.Str("alpha"), tabular.Str("beta"), tabular.Str("gamma")),
	}}
	built, _ := Build(t1, 1024)
	assert.Nil(t, built)
}

func TestBuildIgnoresNonStringValues(t *testing.T) {
	t1 := &tabular.TabularData{Columns: []*tabular.Column{
		column("n", tabular.Int(1), tabular.Int(1), tabular.Int(1)),
	}}
	built, _ := Build(t1, 1024)
	assert.Nil(t, built)
}

func TestBuildReportsConcurrentOnceThresholdExceeded(t *testing.T) {
	t1 := &tabular.TabularData{Columns: []*tabular.Column{
		column("s", tabular.Str("a"), tabular.Str("b"), tabular.Str("c")),
	}}
	_, concurrent := Build(t1, 2)
	assert.True(t, concurrent)

	_, concurrent = Build(t1, 10)
	assert.False(t, concurrent)
}

func TestLookupFuncResolvesBuiltIndices(t *testing.T) {
	built := []string{"active", "inactive"}
	lookup := LookupFunc(built)
	idx, ok := lookup("inactive")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = lookup("missing")
	assert.False(t, ok)
}

func TestAdaptiveMapTracksConcurrencyThreshold(t *testing.T) {
	m := NewAdaptiveMap(2)
	m.Insert("a", 0)
	m.Insert("b", 1)
	assert.False(t, m.IsConcurrent())
	m.Insert("c", 2)
	assert.True(t, m.IsConcurrent())

	v, ok := m.Contains("b")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, m.Enumerate())
}
