package als

// Equivalent reports whether a and b describe the same table: same schema,
// same row count, and every column expanding to the same typed values, even
// if they chose different operators to get there (e.g. one used a Range
// where the other fell back to Raw).
func Equivalent(a, b *Document) bool {
	if a.RowCount != b.RowCount || len(a.Schema) != len(b.Schema) {
		return false
	}
	for i := range a.Schema {
		if a.Schema[i] != b.Schema[i] {
			return false
		}
	}
	for i := range a.Streams {
		av, err := ExpandStream(a.Streams[i], a.Dictionary(), a.Limits.MaxRangeExpansion)
		if err != nil {
			return false
		}
		bv, err := ExpandStream(b.Streams[i], b.Dictionary(), b.Limits.MaxRangeExpansion)
		if err != nil {
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for j := range av {
			if !av[j].Equal(bv[j]) {
				return false
			}
		}
	}
	return true
}
