package codec

import (
	"als/internal/als"
	"als/internal/tabular"
)

// Decompress expands every column stream in doc back into a TabularData,
// inferring each column's type from its expanded values the same way a
// freshly-parsed CSV/JSON table would be.
func Decompress(doc *als.Document) (*tabular.TabularData, error) {
	columns := make([]*tabular.Column, len(doc.Schema))
	dict := doc.Dictionary()
	for i, name := range doc.Schema {
		values, err := als.ExpandStream(doc.Streams[i], dict, doc.Limits.MaxRangeExpansion)
		if err != nil {
			return nil, err
		}
		col := &tabular.Column{Name: name, Values: values}
		col.InferType()
		columns[i] = col
	}
	return &tabular.TabularData{Columns: columns}, nil
}
