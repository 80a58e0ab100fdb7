package codec

import (
	"context"

	"golang.org/x/sync/errgroup"

	"als/internal/als"
	"als/internal/detect"
	"als/internal/dict"
	"als/internal/stats"
	"als/internal/tabular"
)

// smallInputCells bounds the row_count * col_count below which detection
// runs synchronously instead of through the worker pool (spec §5).
const smallInputCells = 4096

// Compressor turns TabularData into an AlsDocument: it builds the shared
// dictionary, runs the pattern detectors per column (in parallel above
// smallInputCells), and decides between ALS and CTX per spec §4.5.
type Compressor struct {
	cfg   Config
	stats *stats.CompressionStats
}

// NewCompressor validates cfg and returns a Compressor ready to compress
// any number of tables; its CompressionStats accumulate across calls.
func NewCompressor(cfg Config) (*Compressor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Compressor{cfg: cfg, stats: stats.New()}, nil
}

// Stats returns the counters this compressor has been accumulating,
// readable concurrently with an in-flight Compress call.
func (c *Compressor) Stats() *stats.CompressionStats { return c.stats }

func (c *Compressor) limits() als.Limits {
	return als.Limits{
		MaxRangeExpansion:    c.cfg.MaxRangeExpansion,
		MaxDictionaryEntries: c.cfg.MaxDictionaryEntries,
	}
}

// Compress builds an AlsDocument from t, per the orchestration in spec
// §4.5: dictionary first, then per-column detection, then the CTX
// fallback decision.
func (c *Compressor) Compress(ctx context.Context, t *tabular.TabularData) (*als.Document, error) {
	schema := t.ColumnNames()
	rowCount := t.RowCount()

	rawSize := rawLength(t)
	if c.cfg.MaxInputSize > 0 && int64(rawSize) > c.cfg.MaxInputSize {
		return nil, &InputTooLargeError{Size: int64(rawSize), Max: c.cfg.MaxInputSize}
	}
	c.stats.AddInputBytes(rawSize)

	if rowCount == 0 {
		doc := &als.Document{
			Version:      als.CurrentVersion,
			Dictionaries: map[string][]string{},
			Schema:       schema,
			Streams:      make([]als.ColumnStream, len(schema)),
			Format:       als.FormatALS,
			RowCount:     0,
			Limits:       c.limits(),
		}
		c.stats.AddOutputBytes(0)
		return doc, nil
	}

	built, hashmapConcurrent := dict.Build(t, c.cfg.HashmapThreshold)
	var lookup detect.Lookup
	if built != nil {
		lookup = dict.LookupFunc(built)
	}

	streams := make([]als.ColumnStream, len(t.Columns))
	if err := c.detectColumns(ctx, t, lookup, hashmapConcurrent, streams); err != nil {
		return nil, err
	}

	dictionaries := map[string][]string{}
	if built != nil {
		dictionaries[dict.DefaultName] = built
	}

	doc := &als.Document{
		Version:      als.CurrentVersion,
		Dictionaries: dictionaries,
		Schema:       schema,
		Streams:      streams,
		Format:       als.FormatALS,
		RowCount:     rowCount,
		Limits:       c.limits(),
	}

	for _, stream := range streams {
		for _, op := range stream.Operators {
			c.stats.RecordOperator(classifyOperator(op))
		}
	}

	return c.chooseFormat(doc, t, rawSize)
}

// detectColumns picks synchronous vs. worker-pool detection per spec §5.
// Either the input's own cell count clearing smallInputCells, or the
// dictionary build's AdaptiveMap reporting itself concurrent
// (HashmapThreshold exceeded distinct string candidates), is enough to
// promote to the errgroup pool: a wide, string-heavy table can warrant
// concurrent detection even with few rows.
func (c *Compressor) detectColumns(ctx context.Context, t *tabular.TabularData, lookup detect.Lookup, hashmapConcurrent bool, streams []als.ColumnStream) error {
	worthPooling := hashmapConcurrent || t.RowCount()*len(t.Columns) >= smallInputCells
	if !worthPooling || c.cfg.Parallelism == 1 {
		for i, col := range t.Columns {
			streams[i] = detect.DetectColumn(col.Values, c.cfg.MinPatternLength, lookup)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if c.cfg.Parallelism > 0 {
		g.SetLimit(c.cfg.Parallelism)
	}
	for i, col := range t.Columns {
		i, col := i, col
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			streams[i] = detect.DetectColumn(col.Values, c.cfg.MinPatternLength, lookup)
			return nil
		})
	}
	return g.Wait()
}

// chooseFormat decides between the ALS document already built and its CTX
// equivalent, per spec §4.5 step 5: CTX wins only when it is both smaller
// than ALS and the raw, uncompressed size divided by the ALS size is below
// CtxFallbackThreshold (which includes ALS coming out larger than raw).
func (c *Compressor) chooseFormat(doc *als.Document, t *tabular.TabularData, rawSize int) (*als.Document, error) {
	alsText, err := als.Serialize(doc)
	if err != nil {
		return nil, err
	}
	ctxDoc := ctxEquivalent(doc, t)
	ctxText, err := als.Serialize(ctxDoc)
	if err != nil {
		return nil, err
	}

	lAls, lCtx := len(alsText), len(ctxText)
	if lAls > 0 && float64(rawSize)/float64(lAls) < c.cfg.CtxFallbackThreshold && lCtx < lAls {
		c.stats.AddOutputBytes(lCtx)
		return ctxDoc, nil
	}
	c.stats.AddOutputBytes(lAls)
	return doc, nil
}

func ctxEquivalent(doc *als.Document, t *tabular.TabularData) *als.Document {
	streams := make([]als.ColumnStream, len(t.Columns))
	for i, col := range t.Columns {
		ops := make([]als.Operator, len(col.Values))
		for r, v := range col.Values {
			ops[r] = als.Raw(als.EncodeToken(v))
		}
		streams[i] = als.ColumnStream{Operators: ops}
	}
	return &als.Document{
		Version:      als.CurrentVersion,
		Dictionaries: map[string][]string{},
		Schema:       doc.Schema,
		Streams:      streams,
		Format:       als.FormatCTX,
		RowCount:     t.RowCount(),
		Limits:       doc.Limits,
	}
}

// rawLength estimates the uncompressed token size of t: the sum of every
// cell's encoded token length, with no operator or separator savings
// applied. This is the "L_raw" spec §4.5 compares L_als against.
func rawLength(t *tabular.TabularData) int {
	total := 0
	for _, col := range t.Columns {
		for _, v := range col.Values {
			total += len(als.EncodeToken(v))
		}
	}
	return total
}

func classifyOperator(op als.Operator) stats.OperatorKind {
	switch op.Kind {
	case als.OpRange:
		return stats.KindRange
	case als.OpToggle:
		return stats.KindToggle
	case als.OpDictRef:
		return stats.KindDictRef
	case als.OpMultiply:
		switch op.Inner.Kind {
		case als.OpRange, als.OpToggle:
			return stats.KindCombined
		default:
			return stats.KindRepeat
		}
	default:
		return stats.KindRaw
	}
}
