package als

import "strings"

// normalizeLineEndings converts CRLF and lone CR to LF before tokenization,
// per the documented line-ending policy: round-tripping a mixed-EOL input
// is normalized-equivalent, not byte-equivalent.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// splitUnescaped splits s on every unescaped occurrence of sep. A
// backslash immediately preceding sep (or any other character) suppresses
// its structural role, so the escaped pair is kept intact in the output
// segment.
func splitUnescaped(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if c == sep {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	out = append(out, cur.String())
	return out
}

// findUnescaped returns the index of the first unescaped occurrence of
// target in s, or -1 if none exists.
func findUnescaped(s string, target byte) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			continue
		}
		if c == target {
			return i
		}
	}
	return -1
}

// splitFields splits a stream segment into its whitespace-separated
// element tokens, ignoring escaped spaces. Empty fields are dropped, so a
// run of unescaped spaces separates fields the same way the serializer's
// single space does.
func splitFields(s string) []string {
	parts := splitUnescaped(s, ' ')
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
