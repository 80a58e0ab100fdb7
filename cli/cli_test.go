package cli

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"als/internal/als"
	"als/internal/stats"
)

func TestResolveFormatFromExtension(t *testing.T) {
	f, err := resolveFormat("data.csv", "auto")
	require.NoError(t, err)
	assert.Equal(t, "csv", f)

	f, err = resolveFormat("data.json", "")
	require.NoError(t, err)
	assert.Equal(t, "json", f)
}

func TestResolveFormatExplicitFlagWins(t *testing.T) {
	f, err := resolveFormat("data.csv", "json")
	require.NoError(t, err)
	assert.Equal(t, "json", f)
}

func TestResolveFormatUnknownExtensionFails(t *testing.T) {
	_, err := resolveFormat("data.bin", "auto")
	require.Error(t, err)
}

func TestLoadConfigAppliesTOMLThenFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.toml"
	require.NoError(t, os.WriteFile(path, []byte("min_pattern_length = 5\nctx_fallback_threshold = 2.0\n"), 0o644))

	flags := codecFlags{ctxFallbackThreshold: 3.0, ctxFallbackThresholdSet: true}
	cfg, err := loadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MinPatternLength)
	assert.Equal(t, 3.0, cfg.CtxFallbackThreshold)
}

func TestLoadConfigWithoutPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("", codecFlags{})
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.CtxFallbackThreshold)
}

func TestExitCodeClassifiesIOErrors(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("bad input")))
	assert.Equal(t, 2, exitCode(&ioError{err: errors.New("disk full")}))
}

func TestFormatInfoRendersCounts(t *testing.T) {
	doc := &als.Document{
		Schema:       []string{"id", "name"},
		RowCount:     5,
		Format:       als.FormatALS,
		Dictionaries: map[string][]string{als.DefaultDictName: {"a", "b"}},
	}
	snap := stats.Snapshot{RangeCount: 1, DictRefCount: 2}
	out := formatInfo(doc, snap)
	assert.True(t, strings.Contains(out, "Rows:        5"))
	assert.True(t, strings.Contains(out, "Dictionary:  2 entries"))
	assert.True(t, strings.Contains(out, "Range:    1"))
}
