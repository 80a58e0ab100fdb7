// Package dict implements the global string dictionary builder (spec §4.4)
// and the size-adaptive map it uses to track candidate frequencies.
package dict

import (
	"sort"

	"als/internal/als"
	"als/internal/tabular"
)

// DefaultName is the dictionary name this builder always produces; the
// grammar supports named dictionaries but this codec only ever builds one.
const DefaultName = als.DefaultDictName

type candidate struct {
	value string
	freq  int
}

// Build scans every string-typed value across t's columns and greedily
// promotes the strings with the highest net token saving into a shared
// dictionary, stopping once the next candidate's marginal saving would be
// zero or negative. It returns nil if no string ever repeats, or if the
// dictionary's total saving would not be positive.
//
// Frequencies are tallied through an AdaptiveMap sized by hashmapThreshold
// (spec §4.9); the second return value reports IsConcurrent for that map,
// so a caller sizing its own worker pool can treat a dictionary build over
// a wide candidate set as a signal the input is large enough to warrant
// concurrent per-column detection too.
func Build(t *tabular.TabularData, hashmapThreshold int) ([]string, bool) {
	freq := NewAdaptiveMap(hashmapThreshold)
	for _, col := range t.Columns {
		for _, v := range col.Values {
			if v.Kind != tabular.KindString {
				continue
			}
			freq.Increment(als.EncodeToken(v), 1)
		}
	}

	keys := freq.Enumerate()
	cands := make([]candidate, 0, len(keys))
	for _, s := range keys {
		f, _ := freq.Contains(s)
		if f >= 2 {
			cands = append(cands, candidate{value: s, freq: f})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		si, sj := singleOccurrenceSaving(cands[i]), singleOccurrenceSaving(cands[j])
		if si != sj {
			return si > sj
		}
		return cands[i].value < cands[j].value
	})

	var built []string
	total := 0
	for _, c := range cands {
		marginal := marginalSaving(c, len(built))
		if marginal <= 0 {
			break
		}
		built = append(built, c.value)
		total += marginal
	}
	concurrent := freq.IsConcurrent()
	if total <= 0 {
		return nil, concurrent
	}
	return built, concurrent
}

// LookupFunc returns a closure resolving an escaped string to its index in
// built, suitable for passing as a detect.Lookup.
func LookupFunc(built []string) func(s string) (int, bool) {
	index := make(map[string]int, len(built))
	for i, s := range built {
		index[s] = i
	}
	return func(s string) (int, bool) {
		i, ok := index[s]
		return i, ok
	}
}

// refCost is the byte cost of referencing dictionary slot idx, "_" plus
// its decimal digits.
func refCost(idx int) int {
	return len(als.SerializeOperator(als.DictRefOp(idx)))
}

// marginalSaving estimates the net token saving of promoting c to slot
// idx, per spec §4.4's formula: occurrences saved per reference, minus
// this entry's share of the dictionary line overhead.
func marginalSaving(c candidate, idx int) int {
	perOccurrence := len(c.value) - refCost(idx)
	overhead := len(c.value)
	if idx == 0 {
		overhead += len("$" + DefaultName + ":")
	} else {
		overhead++ // the "|" separating this entry from the previous one
	}
	return c.freq*perOccurrence - overhead
}

func singleOccurrenceSaving(c candidate) int {
	return marginalSaving(c, 0)
}
