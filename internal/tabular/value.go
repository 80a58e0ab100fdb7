// Package tabular provides the column-oriented in-memory representation of
// tabular data consumed by the compressor and produced by the parser, along
// with CSV and JSON adapters.
package tabular

import "fmt"

// Kind identifies the dynamic type carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is one cell in a Column. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
	B    bool
}

// Null is the canonical Null value.
var Null = Value{Kind: KindNull}

func Int(i int64) Value    { return Value{Kind: KindInt, I: i} }
func Float(f float64) Value { return Value{Kind: KindFloat, F: f} }
func Str(s string) Value   { return Value{Kind: KindString, S: s} }
func Bool(b bool) Value    { return Value{Kind: KindBool, B: b} }

// Equal reports typed equality: values of different Kind are never equal,
// even if numerically equivalent (an Int(1) and a Float(1) are distinct).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInt:
		return v.I == o.I
	case KindFloat:
		return v.F == o.F
	case KindString:
		return v.S == o.S
	case KindBool:
		return v.B == o.B
	}
	return false
}

func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "<null>"
	case KindInt:
		return fmt.Sprintf("%d", v.I)
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindString:
		return v.S
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	default:
		return "<invalid>"
	}
}
