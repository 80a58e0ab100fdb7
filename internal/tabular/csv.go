package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// FromCSV builds a TabularData from a reader of RFC-4180 CSV text. The
// first row is the header; surface parsing is delegated to encoding/csv, as
// CSV surface parsing is an external collaborator of this codec, not part
// of its core.
func FromCSV(r io.Reader) (*TabularData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return &TabularData{}, nil
	}
	if err != nil {
		return nil, csvErrorFrom(err)
	}

	cols := make([]*Column, len(header))
	for i, name := range header {
		cols[i] = &Column{Name: name}
	}

	lineNo := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvErrorFrom(err)
		}
		lineNo++
		for i := range cols {
			if i >= len(record) {
				cols[i].Values = append(cols[i].Values, Null)
				continue
			}
			cols[i].Values = append(cols[i].Values, ParseToken(record[i]))
		}
	}

	for _, c := range cols {
		c.InferType()
	}
	return &TabularData{Columns: cols}, nil
}

func csvErrorFrom(err error) error {
	if pe, ok := err.(*csv.ParseError); ok {
		return &CSVError{Line: pe.Line, Column: pe.Column, Message: pe.Err.Error()}
	}
	return &CSVError{Message: err.Error()}
}

// ToCSV serializes t back to CSV text, writing header then rows in column
// order. Null cells become empty fields; FromCSV reads an empty field back
// as the empty string, so a Null cell does not survive a CSV round trip.
func ToCSV(t *TabularData, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	n := t.RowCount()
	row := make([]string, len(t.Columns))
	for r := 0; r < n; r++ {
		for ci, col := range t.Columns {
			v := col.Values[r]
			if v.Kind == KindNull {
				row[ci] = ""
			} else {
				row[ci] = v.String()
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
