package tabular

import (
	"fmt"

	"als/internal/errkind"
)

// CSVError reports a CSV parse failure at a given line/column.
type CSVError struct {
	Line    int
	Column  int
	Message string
}

func (e *CSVError) Error() string {
	return fmt.Sprintf("csv: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *CSVError) Kind() errkind.Kind { return errkind.KindInputSyntax }

// JSONError reports a JSON parse or shape failure at a given document path.
type JSONError struct {
	Path    string
	Message string
}

func (e *JSONError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("json: %s", e.Message)
	}
	return fmt.Sprintf("json: at %s: %s", e.Path, e.Message)
}

func (e *JSONError) Kind() errkind.Kind { return errkind.KindInputSyntax }
