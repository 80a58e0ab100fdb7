package detect

import (
	"als/internal/als"
	"als/internal/tabular"
)

// Lookup resolves a string value's dictionary index, joint product of the
// dictionary builder (§4.4) and this package's detectors (§4.3.5). A real
// Lookup is backed by the table-wide dictionary the compressor builds
// before per-column detection starts.
type Lookup func(s string) (index int, ok bool)

// detectDictRefs proposes a single-row DictRef candidate everywhere a
// string value was promoted into the dictionary.
func detectDictRefs(values []tabular.Value, lookup Lookup) []Candidate {
	if lookup == nil {
		return nil
	}
	var out []Candidate
	for i, v := range values {
		if v.Kind != tabular.KindString {
			continue
		}
		idx, ok := lookup(als.EncodeToken(v))
		if !ok {
			continue
		}
		out = append(out, newCandidate(i, i, als.DictRefOp(idx)))
	}
	return out
}
