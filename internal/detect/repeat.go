package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// detectRepeats finds maximal runs of adjacent equal values, one candidate
// per run start, becoming Multiply{Raw(v),n} when long enough (§4.3.2).
func detectRepeats(values []tabular.Value, minLen int) []Candidate {
	var out []Candidate
	n := len(values)
	for i := 0; i < n; i++ {
		j := i
		for j+1 < n && values[j+1].Equal(values[i]) {
			j++
		}
		if j-i+1 >= minLen {
			inner := als.Raw(als.EncodeToken(values[i]))
			out = append(out, newCandidate(i, j, als.MultiplyOp(inner, j-i+1)))
		}
	}
	return out
}
