package codec

import (
	"als/internal/als"
	"als/internal/stats"
)

// Describe tallies doc's operators by kind, for callers (the cli's
// "info" command) that want a summary of an already-built or freshly
// parsed document without running a fresh compression.
func Describe(doc *als.Document) stats.Snapshot {
	s := stats.New()
	for _, stream := range doc.Streams {
		for _, op := range stream.Operators {
			s.RecordOperator(classifyOperator(op))
		}
	}
	return s.Snapshot()
}
