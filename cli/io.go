package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"als/internal/als"
	"als/internal/tabular"
)

// resolveFormat returns flagFormat unless it is "" or "auto", in which
// case it infers csv/json/als from path's extension; ".ctx" is accepted
// as an alias for "als" since both wire formats share a parser.
func resolveFormat(path, flagFormat string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flagFormat))
	if f != "" && f != "auto" {
		return f, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv", nil
	case ".json":
		return "json", nil
	case ".als", ".ctx":
		return "als", nil
	default:
		return "", fmt.Errorf("cli: cannot infer format for %q; pass --format", path)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ioError{err: fmt.Errorf("cli: open input %q: %w", path, err)}
	}
	return f, nil
}

func readTabular(path, format string) (*tabular.TabularData, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	switch format {
	case "csv":
		return tabular.FromCSV(r)
	case "json":
		return tabular.FromJSON(r)
	default:
		return nil, fmt.Errorf("cli: unsupported input format %q for tabular data", format)
	}
}

func readDocument(path string) (*als.Document, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &ioError{err: fmt.Errorf("cli: read input: %w", err)}
	}
	return als.Parse(string(content))
}

func writeTabular(path, format string, t *tabular.TabularData) error {
	var sb strings.Builder
	var err error
	switch format {
	case "csv":
		err = tabular.ToCSV(t, &sb)
	case "json":
		err = tabular.ToJSON(t, &sb)
	default:
		return fmt.Errorf("cli: unsupported output format %q for tabular data", format)
	}
	if err != nil {
		return err
	}
	return writeOutput(path, sb.String())
}

// writeOutput writes content to path atomically via renameio so a reader
// never observes a half-written file, or to stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}
	if err := renameio.WriteFile(path, []byte(content), 0o644); err != nil {
		return &ioError{err: fmt.Errorf("cli: write output %q: %w", path, err)}
	}
	return nil
}
