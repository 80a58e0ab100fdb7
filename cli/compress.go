package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"als/internal/als"
	"als/internal/codec"
)

type compressFlags struct {
	input   string
	output  string
	format  string
	config  string
	verbose bool
	quiet   bool
	codecFlags
}

func compressCmd() *cobra.Command {
	flags := &compressFlags{}
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress CSV or JSON tabular data into an ALS stream",
		RunE: func(c *cobra.Command, _ []string) error {
			return runCompress(c, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file (defaults to stdin)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format: csv|json|auto")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML configuration file")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print progress to stderr")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().Float64Var(&flags.ctxFallbackThreshold, "ctx-fallback-threshold", 0, "Override ctx_fallback_threshold")
	cmd.Flags().IntVar(&flags.minPatternLength, "min-pattern-length", 0, "Override min_pattern_length")
	cmd.Flags().IntVar(&flags.parallelism, "parallelism", 0, "Override parallelism (0 = auto)")

	return cmd
}

func runCompress(c *cobra.Command, flags *compressFlags) error {
	flags.ctxFallbackThresholdSet = c.Flags().Changed("ctx-fallback-threshold")
	flags.minPatternLengthSet = c.Flags().Changed("min-pattern-length")
	flags.parallelismSet = c.Flags().Changed("parallelism")

	cfg, err := loadConfig(flags.config, flags.codecFlags)
	if err != nil {
		return err
	}

	format, err := resolveFormat(flags.input, flags.format)
	if err != nil {
		return err
	}
	if format != "csv" && format != "json" {
		return fmt.Errorf("cli: compress needs a csv or json input format, got %q", format)
	}

	progress(flags.verbose, flags.quiet, "reading %s input", format)
	data, err := readTabular(flags.input, format)
	if err != nil {
		return err
	}

	compressor, err := codec.NewCompressor(cfg)
	if err != nil {
		return err
	}

	progress(flags.verbose, flags.quiet, "compressing %d rows, %d columns", data.RowCount(), len(data.Columns))
	doc, err := compressor.Compress(context.Background(), data)
	if err != nil {
		return err
	}

	text, err := als.Serialize(doc)
	if err != nil {
		return err
	}

	snap := compressor.Stats().Snapshot()
	progress(flags.verbose, flags.quiet, "wrote %s (%d -> %d bytes)", doc.Format, snap.InputBytes, snap.OutputBytes)

	return writeOutput(flags.output, text)
}

func progress(verbose, quiet bool, format string, args ...any) {
	if quiet || !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
