package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// detectRanges finds maximal runs of integer values with a constant
// nonzero step and length >= minLen, one maximal candidate per run start,
// per spec's Range detector (§4.3.1). Non-integer values and runs shorter
// than minLen never produce a candidate; the DP optimizer falls back to
// Raw for them.
func detectRanges(values []tabular.Value, minLen int) []Candidate {
	var out []Candidate
	n := len(values)
	for i := 0; i < n; i++ {
		if values[i].Kind != tabular.KindInt {
			continue
		}
		if i+1 >= n || values[i+1].Kind != tabular.KindInt {
			continue
		}
		step := values[i+1].I - values[i].I
		if step == 0 {
			continue
		}
		j := i + 1
		for j+1 < n && values[j+1].Kind == tabular.KindInt && values[j+1].I-values[j].I == step {
			j++
		}
		if j-i+1 >= minLen {
			out = append(out, newCandidate(i, j, als.RangeOp(values[i].I, values[j].I, step)))
		}
	}
	return out
}
