package tabular

import (
	"strconv"
	"strings"
)

// ParseToken classifies a raw text token (from CSV, or a JSON scalar
// rendered back to text) into a typed Value. Null/missing tokens must be
// passed as KindNull by the caller directly; ParseToken only ever sees
// present text.
//
// A leading-zero integer-looking token (e.g. "007", but not a lone "0") is
// kept as a String: promoting it to Integer would silently drop the leading
// zero on re-serialization, violating the exact-text-form guarantee for
// string-typed numeric-looking values.
func ParseToken(s string) Value {
	if s == "" {
		return Str("")
	}
	if s == "true" {
		return Bool(true)
	}
	if s == "false" {
		return Bool(false)
	}
	if looksLikeInt(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}
	if looksLikeFloat(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}
	return Str(s)
}

func looksLikeInt(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	if i >= len(s) {
		return false
	}
	digits := s[i:]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return false // leading zero: preserve as string
	}
	return true
}

func looksLikeFloat(s string) bool {
	if !strings.ContainsAny(s, ".eE") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
