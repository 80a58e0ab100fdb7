package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"als/internal/codec"
)

type decompressFlags struct {
	input  string
	output string
	format string
}

func decompressCmd() *cobra.Command {
	flags := &decompressFlags{}
	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress an ALS or CTX stream back into CSV or JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDecompress(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file (defaults to stdin)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Output format: csv|json|auto")

	return cmd
}

func runDecompress(flags *decompressFlags) error {
	outputFormat, err := resolveFormat(flags.output, flags.format)
	if err != nil {
		return err
	}
	if outputFormat != "csv" && outputFormat != "json" {
		return fmt.Errorf("cli: decompress needs a csv or json output format, got %q", outputFormat)
	}

	doc, err := readDocument(flags.input)
	if err != nil {
		return err
	}

	data, err := codec.Decompress(doc)
	if err != nil {
		return err
	}

	return writeTabular(flags.output, outputFormat, data)
}
