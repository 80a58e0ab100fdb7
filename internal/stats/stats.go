// Package stats holds the lock-free counters the compressor updates while
// it runs, readable at any time without coordination (spec §5, §9).
package stats

import "sync/atomic"

// CompressionStats is the only shared mutable state the concurrency model
// permits on the hot path: plain atomic counters, no locks, safe to read
// from a goroutine other than the one compressing.
type CompressionStats struct {
	inputBytes  atomic.Int64
	outputBytes atomic.Int64

	rangeCount     atomic.Int64
	repeatCount    atomic.Int64
	toggleCount    atomic.Int64
	combinedCount  atomic.Int64
	dictRefCount   atomic.Int64
	rawCount       atomic.Int64
}

// New returns a zeroed CompressionStats ready to be shared across the
// column-granularity worker pool.
func New() *CompressionStats {
	return &CompressionStats{}
}

func (s *CompressionStats) AddInputBytes(n int)  { s.inputBytes.Add(int64(n)) }
func (s *CompressionStats) AddOutputBytes(n int) { s.outputBytes.Add(int64(n)) }

func (s *CompressionStats) InputBytes() int64  { return s.inputBytes.Load() }
func (s *CompressionStats) OutputBytes() int64 { return s.outputBytes.Load() }

// RecordOperator increments the counter matching op's kind, keyed the same
// way detect.Candidate operators are produced.
func (s *CompressionStats) RecordOperator(kind OperatorKind) {
	switch kind {
	case KindRange:
		s.rangeCount.Add(1)
	case KindRepeat:
		s.repeatCount.Add(1)
	case KindToggle:
		s.toggleCount.Add(1)
	case KindCombined:
		s.combinedCount.Add(1)
	case KindDictRef:
		s.dictRefCount.Add(1)
	case KindRaw:
		s.rawCount.Add(1)
	}
}

// OperatorKind classifies an operator for counting purposes; Combined is
// tracked separately from Range/Toggle even though it wraps one of them,
// since it is a distinct detector outcome.
type OperatorKind uint8

const (
	KindRange OperatorKind = iota
	KindRepeat
	KindToggle
	KindCombined
	KindDictRef
	KindRaw
)

// Snapshot is a point-in-time, non-atomic copy of the counters, convenient
// for printing (cli's "info" command) or testing.
type Snapshot struct {
	InputBytes  int64
	OutputBytes int64

	RangeCount    int64
	RepeatCount   int64
	ToggleCount   int64
	CombinedCount int64
	DictRefCount  int64
	RawCount      int64
}

func (s *CompressionStats) Snapshot() Snapshot {
	return Snapshot{
		InputBytes:    s.inputBytes.Load(),
		OutputBytes:   s.outputBytes.Load(),
		RangeCount:    s.rangeCount.Load(),
		RepeatCount:   s.repeatCount.Load(),
		ToggleCount:   s.toggleCount.Load(),
		CombinedCount: s.combinedCount.Load(),
		DictRefCount:  s.dictRefCount.Load(),
		RawCount:      s.rawCount.Load(),
	}
}
