// Package codec orchestrates compression (pattern detection + dictionary +
// CTX fallback) and decompression into TabularData, per spec §4.5.
package codec

// Config holds every tunable the compressor and CLI expose, mirroring the
// configuration options spec §6 enumerates.
type Config struct {
	CtxFallbackThreshold float64
	MinPatternLength     int
	MaxRangeExpansion    int
	MaxDictionaryEntries int
	MaxInputSize         int64
	Parallelism          int
	SIMDEnable           bool
	HashmapThreshold     int
}

// DefaultConfig returns spec §6's documented defaults.
func DefaultConfig() Config {
	return Config{
		CtxFallbackThreshold: 1.2,
		MinPatternLength:     3,
		MaxRangeExpansion:    10_000_000,
		MaxDictionaryEntries: 65_536,
		MaxInputSize:         1 << 30,
		Parallelism:          0,
		SIMDEnable:           false,
		HashmapThreshold:     1024,
	}
}

// Validate rejects a configuration that could never drive a sensible
// compression decision, checked once up front rather than deep inside the
// detectors.
func (c Config) Validate() error {
	if c.CtxFallbackThreshold <= 0 {
		return &ConfigError{Field: "ctx_fallback_threshold", Message: "must be positive"}
	}
	if c.MinPatternLength < 2 {
		return &ConfigError{Field: "min_pattern_length", Message: "must be at least 2"}
	}
	if c.MaxRangeExpansion < 0 {
		return &ConfigError{Field: "max_range_expansion", Message: "must not be negative"}
	}
	if c.MaxDictionaryEntries < 0 {
		return &ConfigError{Field: "max_dictionary_entries", Message: "must not be negative"}
	}
	if c.MaxInputSize < 0 {
		return &ConfigError{Field: "max_input_size", Message: "must not be negative"}
	}
	if c.Parallelism < 0 {
		return &ConfigError{Field: "parallelism", Message: "must not be negative"}
	}
	if c.HashmapThreshold < 0 {
		return &ConfigError{Field: "hashmap_threshold", Message: "must not be negative"}
	}
	return nil
}
