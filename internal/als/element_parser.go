package als

import (
	"strconv"
	"strings"
)

// parseElement parses a single whitespace-delimited element token into an
// Operator: range, multiply, toggle, dictref, or raw, per the grammar in
// spec §4.6.
func parseElement(tok string) (Operator, error) {
	if tok == "" {
		return Operator{}, &SyntaxError{Message: "empty element token"}
	}

	if tok[0] == '_' {
		idx, err := strconv.Atoi(tok[1:])
		if err != nil || idx < 0 {
			return Operator{}, &SyntaxError{Message: "malformed dictionary reference " + tok}
		}
		return DictRefOp(idx), nil
	}

	if tok[0] == '(' {
		// A leading "(" is ambiguous: it is both how a parenthesized
		// Multiply operand opens and a character a raw string value may
		// legitimately start with ("(foo)" never got escaped; "(" and ")"
		// carry no structural meaning outside this one position). Only
		// commit to the operator reading when the rest of tok actually
		// parses as one; anything else is raw text that merely happens
		// to start with "(".
		if op, ok := tryParseParenthesized(tok); ok {
			return op, nil
		}
		return Raw(tok), nil
	}

	if tildeIdx := findUnescaped(tok, '~'); tildeIdx >= 0 {
		a := tok[:tildeIdx]
		rest := tok[tildeIdx+1:]
		count := 2
		b := rest
		if starIdx := findUnescaped(rest, '*'); starIdx >= 0 {
			b = rest[:starIdx]
			n, err := strconv.Atoi(rest[starIdx+1:])
			if err != nil || n < 2 {
				return Operator{}, &SyntaxError{Message: "invalid toggle count in " + tok}
			}
			count = n
		}
		return ToggleOp(a, b, count), nil
	}

	if gtIdx := findUnescaped(tok, '>'); gtIdx >= 0 {
		startStr := tok[:gtIdx]
		rest := tok[gtIdx+1:]
		endStr := rest
		step := int64(1)
		if colonIdx := findUnescaped(rest, ':'); colonIdx >= 0 {
			endStr = rest[:colonIdx]
			s, err := strconv.ParseInt(rest[colonIdx+1:], 10, 64)
			if err != nil {
				return Operator{}, &SyntaxError{Message: "invalid range step in " + tok}
			}
			step = s
		}
		start, err1 := strconv.ParseInt(startStr, 10, 64)
		end, err2 := strconv.ParseInt(endStr, 10, 64)
		if err1 != nil || err2 != nil {
			return Operator{}, &SyntaxError{Message: "invalid range bounds in " + tok}
		}
		return RangeOp(start, end, step), nil
	}

	if starIdx := findUnescaped(tok, '*'); starIdx >= 0 {
		raw := tok[:starIdx]
		count, err := strconv.Atoi(tok[starIdx+1:])
		if err != nil || count < 2 {
			return Operator{}, &SyntaxError{Message: "invalid multiply count in " + tok}
		}
		return MultiplyOp(Raw(raw), count), nil
	}

	return Raw(tok), nil
}

// tryParseParenthesized attempts the "(" + inner-element + ")*count" reading
// of tok. It reports ok=false (never an error) on any shape mismatch, so
// the caller can fall back to treating tok as a raw value.
func tryParseParenthesized(tok string) (Operator, bool) {
	closeIdx := strings.IndexByte(tok, ')')
	if closeIdx < 0 {
		return Operator{}, false
	}
	inner := tok[1:closeIdx]
	rest := tok[closeIdx+1:]
	if len(rest) < 2 || rest[0] != '*' {
		return Operator{}, false
	}
	count, err := strconv.Atoi(rest[1:])
	if err != nil || count < 2 {
		return Operator{}, false
	}
	innerOp, err := parseElement(inner)
	if err != nil {
		return Operator{}, false
	}
	return MultiplyOp(innerOp, count), true
}
