package als

import (
	"als/internal/escape"
	"als/internal/tabular"
)

// ExpandStream expands every operator in stream, in order, into the
// column's values, resolving DictRef operators against dict. maxRange
// bounds any single Range's expansion length (spec §5's
// max_range_expansion); pass 0 to skip the check.
func ExpandStream(stream ColumnStream, dict []string, maxRange int) ([]tabular.Value, error) {
	var out []tabular.Value
	for _, op := range stream.Operators {
		vals, err := ExpandOperator(op, dict, maxRange)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	return out, nil
}

// ExpandStreamLen is like ExpandStream but returns only the row count,
// without allocating the expanded values, so Document.Validate can check
// row counts cheaply even for large Range/Multiply/Toggle operators.
func ExpandStreamLen(stream ColumnStream, dict []string, maxRange int) (int, error) {
	total := 0
	for _, op := range stream.Operators {
		n, err := OperatorLen(op, len(dict), maxRange)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// OperatorLen computes an operator's expansion length without expanding it.
func OperatorLen(op Operator, dictSize, maxRange int) (int, error) {
	switch op.Kind {
	case OpRaw:
		return 1, nil
	case OpDictRef:
		if op.DictIndex < 0 || op.DictIndex >= dictSize {
			return 0, &InvalidDictRefError{Index: op.DictIndex, DictSize: dictSize}
		}
		return 1, nil
	case OpRange:
		return rangeLength(op.Start, op.End, op.Step, maxRange)
	case OpToggle:
		return op.Count, nil
	case OpMultiply:
		innerLen, err := OperatorLen(*op.Inner, dictSize, maxRange)
		if err != nil {
			return 0, err
		}
		return innerLen * op.Count, nil
	default:
		return 0, &SyntaxError{Message: "unknown operator kind in expansion"}
	}
}

func rangeLength(start, end, step int64, maxRange int) (int, error) {
	if step == 0 {
		return 0, &RangeExpansionError{Start: start, End: end, Step: step}
	}
	diff := end - start
	if diff%step != 0 {
		return 0, &RangeExpansionError{Start: start, End: end, Step: step}
	}
	quotient := diff / step
	if quotient < 0 {
		return 0, &RangeExpansionError{Start: start, End: end, Step: step}
	}
	n := quotient + 1
	if maxRange > 0 && n > int64(maxRange) {
		return 0, &RangeOverflowError{Length: n, Max: int64(maxRange)}
	}
	return int(n), nil
}

// ExpandOperator expands a single operator into its values.
func ExpandOperator(op Operator, dict []string, maxRange int) ([]tabular.Value, error) {
	switch op.Kind {
	case OpRaw:
		v, err := decodeRawToken(op.RawValue)
		if err != nil {
			return nil, err
		}
		return []tabular.Value{v}, nil

	case OpDictRef:
		if op.DictIndex < 0 || op.DictIndex >= len(dict) {
			return nil, &InvalidDictRefError{Index: op.DictIndex, DictSize: len(dict)}
		}
		v, err := decodeRawToken(dict[op.DictIndex])
		if err != nil {
			return nil, err
		}
		return []tabular.Value{v}, nil

	case OpRange:
		n, err := rangeLength(op.Start, op.End, op.Step, maxRange)
		if err != nil {
			return nil, err
		}
		out := make([]tabular.Value, n)
		cur := op.Start
		for i := 0; i < n; i++ {
			out[i] = tabular.Int(cur)
			cur += op.Step
		}
		return out, nil

	case OpToggle:
		out := make([]tabular.Value, op.Count)
		a, err := decodeRawToken(op.ToggleA)
		if err != nil {
			return nil, err
		}
		b, err := decodeRawToken(op.ToggleB)
		if err != nil {
			return nil, err
		}
		for i := 0; i < op.Count; i++ {
			if i%2 == 0 {
				out[i] = a
			} else {
				out[i] = b
			}
		}
		return out, nil

	case OpMultiply:
		inner, err := ExpandOperator(*op.Inner, dict, maxRange)
		if err != nil {
			return nil, err
		}
		out := make([]tabular.Value, 0, len(inner)*op.Count)
		for i := 0; i < op.Count; i++ {
			out = append(out, inner...)
		}
		return out, nil

	default:
		return nil, &SyntaxError{Message: "unknown operator kind in expansion"}
	}
}

// decodeRawToken inverts escaping and resolves the \0 / \e sentinels,
// reconstructing a typed Value the same way the original column's cell was
// typed.
func decodeRawToken(token string) (tabular.Value, error) {
	switch token {
	case escape.NullSentinel:
		return tabular.Null, nil
	case escape.EmptySentinel:
		return tabular.Str(""), nil
	}
	raw, err := escape.Unescape(token)
	if err != nil {
		return tabular.Value{}, err
	}
	return tabular.ParseToken(raw), nil
}
