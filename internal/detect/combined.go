package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// detectCombined looks for the whole column being k >= 2 consecutive
// copies of a shorter period P, where P itself is expressible as a single
// Range or single Toggle, per spec's Combined detector (§4.3.4). It
// chooses the smallest valid period (equivalently the largest k), and
// only ever proposes one candidate spanning the entire column.
func detectCombined(values []tabular.Value, minLen int) []Candidate {
	n := len(values)
	if n == 0 || minLen < 1 {
		return nil
	}
	for p := minLen; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		if !isPeriodic(values, p) {
			continue
		}
		if op, ok := fullSpanOperator(values[:p]); ok {
			k := n / p
			return []Candidate{newCandidate(0, n-1, als.MultiplyOp(op, k))}
		}
	}
	return nil
}

func isPeriodic(values []tabular.Value, p int) bool {
	for i := p; i < len(values); i++ {
		if !values[i].Equal(values[i%p]) {
			return false
		}
	}
	return true
}

// fullSpanOperator reports whether p is itself a single Range or single
// Toggle spanning its entire length, the shape Combined requires of its
// inner operator.
func fullSpanOperator(p []tabular.Value) (als.Operator, bool) {
	if len(p) < 2 {
		return als.Operator{}, false
	}

	if allInt(p) {
		step := p[1].I - p[0].I
		if step != 0 {
			ok := true
			for i := 1; i < len(p); i++ {
				if p[i].I-p[i-1].I != step {
					ok = false
					break
				}
			}
			if ok {
				return als.RangeOp(p[0].I, p[len(p)-1].I, step), true
			}
		}
	}

	if !p[0].Equal(p[1]) {
		a, b := p[0], p[1]
		ok := true
		for i := range p {
			want := a
			if i%2 == 1 {
				want = b
			}
			if !p[i].Equal(want) {
				ok = false
				break
			}
		}
		if ok {
			return als.ToggleOp(als.EncodeToken(a), als.EncodeToken(b), len(p)), true
		}
	}

	return als.Operator{}, false
}

func allInt(values []tabular.Value) bool {
	for _, v := range values {
		if v.Kind != tabular.KindInt {
			return false
		}
	}
	return true
}
