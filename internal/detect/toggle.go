package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// detectToggles finds maximal runs of strict two-value alternation, one
// candidate per run start, becoming Toggle{[a,b],n} when n is at least
// max(minLen, 4) per spec's Toggle detector (§4.3.3).
func detectToggles(values []tabular.Value, minLen int) []Candidate {
	threshold := minLen
	if threshold < 4 {
		threshold = 4
	}

	var out []Candidate
	n := len(values)
	for i := 0; i < n; i++ {
		if i+1 >= n || values[i+1].Equal(values[i]) {
			continue
		}
		a, b := values[i], values[i+1]
		j := i + 1
		for j+1 < n {
			want := a
			if (j+1-i)%2 == 1 {
				want = b
			}
			if !values[j+1].Equal(want) {
				break
			}
			j++
		}
		length := j - i + 1
		if length >= threshold {
			op := als.ToggleOp(als.EncodeToken(a), als.EncodeToken(b), length)
			out = append(out, newCandidate(i, j, op))
		}
	}
	return out
}
