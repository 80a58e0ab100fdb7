package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// state is one entry of the backward dynamic-programming table: the
// minimum cost of encoding the suffix starting at this row, the operator
// count that achieves it, and the chosen operator to emit here.
type state struct {
	has     bool
	cost    int
	opCount int
	length  int
	next    int
	op      als.Operator
}

// DetectColumn runs every required detector over values and selects the
// minimum-cost segmentation into a ColumnStream via the dynamic-programming
// optimizer described in spec §4.3: best[i] = min over candidates e
// covering [i..j] of cost(e) + best[j+1]. Ties prefer fewer operators,
// then the longer operator; among equal-length candidates the
// first-detected (Range, then Repeat, Toggle, Combined, DictRef, Raw)
// wins, since later candidates only replace the running choice on a
// strict improvement.
//
// lookup resolves string values against the table-wide dictionary the
// compressor built before calling DetectColumn; pass nil if no dictionary
// was built for this compression.
func DetectColumn(values []tabular.Value, minPatternLength int, lookup Lookup) als.ColumnStream {
	n := len(values)
	if n == 0 {
		return als.ColumnStream{}
	}

	byStart := make([][]Candidate, n)
	add := func(cs []Candidate) {
		for _, c := range cs {
			byStart[c.Start] = append(byStart[c.Start], c)
		}
	}
	add(detectRanges(values, minPatternLength))
	add(detectRepeats(values, minPatternLength))
	add(detectToggles(values, minPatternLength))
	add(detectCombined(values, minPatternLength))
	add(detectDictRefs(values, lookup))
	for i, v := range values {
		byStart[i] = append(byStart[i], rawCandidate(i, v))
	}

	best := make([]state, n+1)
	best[n] = state{has: true}

	for i := n - 1; i >= 0; i-- {
		var chosen state
		for _, c := range byStart[i] {
			tail := best[c.End+1]
			if !tail.has {
				continue
			}
			// A stream is its operators joined by single spaces (per the
			// grammar's `element (" " element)*`), so every operator after
			// the first costs one extra separator byte; folding that in
			// here keeps the DP's notion of cost equal to the true
			// serialized stream length.
			separator := 0
			if tail.opCount > 0 {
				separator = 1
			}
			total := c.Cost + separator + tail.cost
			opCount := 1 + tail.opCount
			length := c.End - c.Start + 1

			better := !chosen.has ||
				total < chosen.cost ||
				(total == chosen.cost && opCount < chosen.opCount) ||
				(total == chosen.cost && opCount == chosen.opCount && length > chosen.length)
			if better {
				chosen = state{has: true, cost: total, opCount: opCount, length: length, next: c.End + 1, op: c.Op}
			}
		}
		best[i] = chosen
	}

	var ops []als.Operator
	for i := 0; i < n; {
		s := best[i]
		ops = append(ops, s.op)
		i = s.next
	}
	return als.ColumnStream{Operators: ops}
}
