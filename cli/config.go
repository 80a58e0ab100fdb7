// Package cli wires the als codec into a Cobra command tree: compress,
// decompress, and info, each reading/writing CSV, JSON, ALS, or CTX and
// layering CLI flags over an optional TOML config file over built-in
// defaults.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"als/internal/codec"
)

// tomlConfig is the top-level TOML document `--config` decodes, field
// names matching spec §6's configuration options verbatim.
type tomlConfig struct {
	CtxFallbackThreshold *float64 `toml:"ctx_fallback_threshold"`
	MinPatternLength     *int     `toml:"min_pattern_length"`
	MaxRangeExpansion    *int     `toml:"max_range_expansion"`
	MaxDictionaryEntries *int     `toml:"max_dictionary_entries"`
	MaxInputSize         *int64   `toml:"max_input_size"`
	Parallelism          *int     `toml:"parallelism"`
	SIMDEnable           *bool    `toml:"simd_enable"`
	HashmapThreshold     *int     `toml:"hashmap_threshold"`
}

// loadConfig starts from codec.DefaultConfig, overlays a TOML file at
// path (if any), then lets overrides win over both.
func loadConfig(path string, overrides codecFlags) (codec.Config, error) {
	cfg := codec.DefaultConfig()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return codec.Config{}, fmt.Errorf("cli: open config %q: %w", path, err)
		}
		defer f.Close()
		if err := applyTOML(f, &cfg); err != nil {
			return codec.Config{}, err
		}
	}

	overrides.applyTo(&cfg)
	return cfg, nil
}

func applyTOML(r io.Reader, cfg *codec.Config) error {
	var tc tomlConfig
	if _, err := toml.NewDecoder(r).Decode(&tc); err != nil {
		return fmt.Errorf("cli: decode config: %w", err)
	}
	if tc.CtxFallbackThreshold != nil {
		cfg.CtxFallbackThreshold = *tc.CtxFallbackThreshold
	}
	if tc.MinPatternLength != nil {
		cfg.MinPatternLength = *tc.MinPatternLength
	}
	if tc.MaxRangeExpansion != nil {
		cfg.MaxRangeExpansion = *tc.MaxRangeExpansion
	}
	if tc.MaxDictionaryEntries != nil {
		cfg.MaxDictionaryEntries = *tc.MaxDictionaryEntries
	}
	if tc.MaxInputSize != nil {
		cfg.MaxInputSize = *tc.MaxInputSize
	}
	if tc.Parallelism != nil {
		cfg.Parallelism = *tc.Parallelism
	}
	if tc.SIMDEnable != nil {
		cfg.SIMDEnable = *tc.SIMDEnable
	}
	if tc.HashmapThreshold != nil {
		cfg.HashmapThreshold = *tc.HashmapThreshold
	}
	return nil
}

// codecFlags is the subset of command flags that override Config fields;
// a flag only wins if the user actually set it (cobra's Changed check),
// so an unset CLI flag never clobbers a config-file value.
type codecFlags struct {
	ctxFallbackThreshold float64
	ctxFallbackThresholdSet bool
	minPatternLength        int
	minPatternLengthSet     bool
	parallelism             int
	parallelismSet          bool
}

func (f codecFlags) applyTo(cfg *codec.Config) {
	if f.ctxFallbackThresholdSet {
		cfg.CtxFallbackThreshold = f.ctxFallbackThreshold
	}
	if f.minPatternLengthSet {
		cfg.MinPatternLength = f.minPatternLength
	}
	if f.parallelismSet {
		cfg.Parallelism = f.parallelism
	}
}
