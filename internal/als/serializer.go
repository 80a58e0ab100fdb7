package als

import (
	"sort"
	"strconv"
	"strings"
)

// Serialize renders a Document to its ALS or CTX textual form.
func Serialize(doc *Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder

	if doc.Format == FormatCTX {
		return serializeCTX(doc), nil
	}

	b.WriteString("!v")
	b.WriteString(strconv.Itoa(doc.Version))
	b.WriteByte('\n')

	for _, name := range sortedDictNames(doc.Dictionaries) {
		entries := doc.Dictionaries[name]
		if len(entries) == 0 {
			continue
		}
		b.WriteByte('$')
		b.WriteString(name)
		b.WriteByte(':')
		for i, e := range entries {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(e)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('#')
	b.WriteString(strings.Join(doc.Schema, " #"))
	b.WriteByte('\n')

	for ci, stream := range doc.Streams {
		if ci > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(serializeStream(stream))
	}

	return b.String(), nil
}

func sortedDictNames(dicts map[string][]string) []string {
	names := make([]string, 0, len(dicts))
	for name := range dicts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func serializeStream(stream ColumnStream) string {
	parts := make([]string, len(stream.Operators))
	for i, op := range stream.Operators {
		parts[i] = SerializeOperator(op)
	}
	return strings.Join(parts, " ")
}

// SerializeOperator renders a single operator as it would appear inside a
// stream, matching the cost model detectors use to compare encodings.
func SerializeOperator(op Operator) string {
	switch op.Kind {
	case OpRaw:
		return op.RawValue
	case OpRange:
		if op.Step == 1 {
			return strconv.FormatInt(op.Start, 10) + ">" + strconv.FormatInt(op.End, 10)
		}
		return strconv.FormatInt(op.Start, 10) + ">" + strconv.FormatInt(op.End, 10) + ":" + strconv.FormatInt(op.Step, 10)
	case OpToggle:
		base := op.ToggleA + "~" + op.ToggleB
		if op.Count == 2 {
			return base
		}
		return base + "*" + strconv.Itoa(op.Count)
	case OpDictRef:
		return "_" + strconv.Itoa(op.DictIndex)
	case OpMultiply:
		inner := SerializeOperator(*op.Inner)
		if op.Inner.Kind != OpRaw {
			inner = "(" + inner + ")"
		}
		return inner + "*" + strconv.Itoa(op.Count)
	default:
		return ""
	}
}

// OperatorCost returns an operator's serialized byte length, the unit the
// pattern detectors and dictionary builder optimize against.
func OperatorCost(op Operator) int {
	return len(SerializeOperator(op))
}

func serializeCTX(doc *Document) string {
	var b strings.Builder
	b.WriteString("!ctx\n")
	b.WriteByte('#')
	b.WriteString(strings.Join(doc.Schema, " #"))
	b.WriteByte('\n')

	for r := 0; r < doc.RowCount; r++ {
		for ci, stream := range doc.Streams {
			if ci > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(stream.Operators[r].RawValue)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
