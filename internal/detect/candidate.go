// Package detect implements the per-column pattern detectors (Range,
// Repeat, Toggle, Combined, dictionary reuse, Raw fallback) and the
// dynamic-programming optimizer that stitches their candidates into the
// minimum-cost ColumnStream for a column.
package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// Candidate is one alternative a detector proposes for encoding the
// contiguous row span [Start,End] (inclusive) as a single Operator, tagged
// with its serialized cost so the optimizer can compare it against
// overlapping alternatives without re-serializing anything.
type Candidate struct {
	Start, End int
	Op         als.Operator
	Cost       int
}

func newCandidate(start, end int, op als.Operator) Candidate {
	return Candidate{Start: start, End: end, Op: op, Cost: als.OperatorCost(op)}
}

// rawCandidate is the always-available single-value fallback every
// detector pass falls back to when nothing else applies.
func rawCandidate(i int, v tabular.Value) Candidate {
	return newCandidate(i, i, als.Raw(als.EncodeToken(v)))
}
