package als

import (
	"fmt"

	"als/internal/errkind"
)

// SyntaxError reports an ALS grammar violation at a byte position.
type SyntaxError struct {
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("als: syntax error at byte %d: %s", e.Pos, e.Message)
}

func (e *SyntaxError) Kind() errkind.Kind { return errkind.KindInputSyntax }

// VersionMismatchError reports an unsupported or unknown version header.
type VersionMismatchError struct {
	Got string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("als: unsupported version header %q", e.Got)
}

func (e *VersionMismatchError) Kind() errkind.Kind { return errkind.KindSemantic }

// ColumnMismatchError reports a stream count, or an expanded row count,
// that disagrees with the schema.
type ColumnMismatchError struct {
	Message string
}

func (e *ColumnMismatchError) Error() string { return "als: column mismatch: " + e.Message }

func (e *ColumnMismatchError) Kind() errkind.Kind { return errkind.KindSemantic }

// InvalidDictRefError reports a DictRef index outside its dictionary.
type InvalidDictRefError struct {
	Index, DictSize int
}

func (e *InvalidDictRefError) Error() string {
	return fmt.Sprintf("als: dictionary reference _%d out of range (size %d)", e.Index, e.DictSize)
}

func (e *InvalidDictRefError) Kind() errkind.Kind { return errkind.KindSemantic }

// RangeExpansionError reports a Range whose endpoints are not reachable by
// an integer number of steps.
type RangeExpansionError struct {
	Start, End, Step int64
}

func (e *RangeExpansionError) Error() string {
	return fmt.Sprintf("als: range %d>%d:%d is not reachable in an integer number of steps", e.Start, e.End, e.Step)
}

func (e *RangeExpansionError) Kind() errkind.Kind { return errkind.KindSemantic }

// RangeOverflowError reports a Range whose expansion would exceed the
// configured cap.
type RangeOverflowError struct {
	Length int64
	Max     int64
}

func (e *RangeOverflowError) Error() string {
	return fmt.Sprintf("als: range expansion length %d exceeds max_range_expansion %d", e.Length, e.Max)
}

func (e *RangeOverflowError) Kind() errkind.Kind { return errkind.KindResource }

// DictionaryOverflowError reports a dictionary that grew past its cap.
type DictionaryOverflowError struct {
	Size, Max int
}

func (e *DictionaryOverflowError) Error() string {
	return fmt.Sprintf("als: dictionary size %d exceeds max_dictionary_entries %d", e.Size, e.Max)
}

func (e *DictionaryOverflowError) Kind() errkind.Kind { return errkind.KindResource }
