package als

import (
	"strconv"

	"als/internal/escape"
	"als/internal/tabular"
)

// EncodeToken renders a single typed Value as the token text it would
// carry inside a Raw/Toggle operand or dictionary entry: Null becomes the
// \0 sentinel, the empty string becomes \e, numbers are formatted in their
// canonical textual form, and everything else is escaped.
func EncodeToken(v tabular.Value) string {
	switch v.Kind {
	case tabular.KindNull:
		return escape.NullSentinel
	case tabular.KindInt:
		return strconv.FormatInt(v.I, 10)
	case tabular.KindFloat:
		return formatFloatToken(v.F)
	case tabular.KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case tabular.KindString:
		if v.S == "" {
			return escape.EmptySentinel
		}
		return escape.Escape(v.S)
	default:
		return escape.NullSentinel
	}
}

// formatFloatToken renders f the same way strconv.FormatFloat(f, 'g', -1,
// 64) would, except an integral value always keeps a decimal point.
// Without it, Float(1.0) would encode to the bare digits "1" and
// ParseToken would decode that back as Int(1): the §9 textual-form
// relaxation covers digit spelling, not a change of Kind.
func formatFloatToken(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s + ".0"
	}
	return s
}
