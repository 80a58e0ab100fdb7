// Package als implements the ALS/CTX wire grammar: the AlsDocument model,
// its serializer and tokenizer/parser, and operator expansion back to
// tabular values.
package als

import "fmt"

// OperatorKind discriminates the Operator union.
type OperatorKind uint8

const (
	OpRaw OperatorKind = iota
	OpRange
	OpMultiply
	OpToggle
	OpDictRef
)

// Operator is one syntactic unit of a ColumnStream. Exactly the fields
// relevant to Kind are meaningful.
type Operator struct {
	Kind OperatorKind

	// Raw
	RawValue string // already-escaped text, or \0 / \e sentinels

	// Range
	Start, End, Step int64

	// Multiply
	Inner *Operator
	Count int

	// Toggle
	ToggleA, ToggleB string

	// DictRef
	DictIndex int
}

// Raw constructs a Raw(s) operator from an already-escaped token.
func Raw(escaped string) Operator { return Operator{Kind: OpRaw, RawValue: escaped} }

// RangeOp constructs a Range{start,end,step} operator.
func RangeOp(start, end, step int64) Operator {
	return Operator{Kind: OpRange, Start: start, End: end, Step: step}
}

// MultiplyOp constructs a Multiply{inner,count} operator.
func MultiplyOp(inner Operator, count int) Operator {
	return Operator{Kind: OpMultiply, Inner: &inner, Count: count}
}

// ToggleOp constructs a Toggle{[a,b],count} operator.
func ToggleOp(a, b string, count int) Operator {
	return Operator{Kind: OpToggle, ToggleA: a, ToggleB: b, Count: count}
}

// DictRefOp constructs a DictRef(i) operator.
func DictRefOp(i int) Operator { return Operator{Kind: OpDictRef, DictIndex: i} }

func (o Operator) String() string {
	switch o.Kind {
	case OpRaw:
		return fmt.Sprintf("Raw(%s)", o.RawValue)
	case OpRange:
		return fmt.Sprintf("Range{%d>%d:%d}", o.Start, o.End, o.Step)
	case OpMultiply:
		return fmt.Sprintf("Multiply{%s*%d}", o.Inner, o.Count)
	case OpToggle:
		return fmt.Sprintf("Toggle{[%s,%s]*%d}", o.ToggleA, o.ToggleB, o.Count)
	case OpDictRef:
		return fmt.Sprintf("DictRef(_%d)", o.DictIndex)
	default:
		return "Operator(?)"
	}
}

// ColumnStream is an ordered sequence of Operators expanding to one
// column's values.
type ColumnStream struct {
	Operators []Operator
}
