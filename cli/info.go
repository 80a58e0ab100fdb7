package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"als/internal/als"
	"als/internal/codec"
	"als/internal/stats"
)

type infoFlags struct {
	input string
}

func infoCmd() *cobra.Command {
	flags := &infoFlags{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize an ALS or CTX document",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInfo(flags)
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file (defaults to stdin)")
	return cmd
}

func runInfo(flags *infoFlags) error {
	doc, err := readDocument(flags.input)
	if err != nil {
		return err
	}
	snap := codec.Describe(doc)
	fmt.Print(formatInfo(doc, snap))
	return nil
}

// formatInfo renders a document summary, the same compact-report shape
// (title, rule, labeled counts) as the migration tool's schema diff
// summary.
func formatInfo(doc *als.Document, snap stats.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("ALS Document Summary\n")
	sb.WriteString("====================\n\n")

	fmt.Fprintf(&sb, "Format:      %s\n", doc.Format)
	fmt.Fprintf(&sb, "Rows:        %d\n", doc.RowCount)
	fmt.Fprintf(&sb, "Columns:     %d\n", len(doc.Schema))
	fmt.Fprintf(&sb, "Dictionary:  %d entries\n", len(doc.Dictionary()))

	sb.WriteString("\nOperators:\n")
	fmt.Fprintf(&sb, "  Range:    %d\n", snap.RangeCount)
	fmt.Fprintf(&sb, "  Repeat:   %d\n", snap.RepeatCount)
	fmt.Fprintf(&sb, "  Toggle:   %d\n", snap.ToggleCount)
	fmt.Fprintf(&sb, "  Combined: %d\n", snap.CombinedCount)
	fmt.Fprintf(&sb, "  DictRef:  %d\n", snap.DictRefCount)
	fmt.Fprintf(&sb, "  Raw:      %d\n", snap.RawCount)

	return sb.String()
}
