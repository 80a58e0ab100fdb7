package cli

import (
	"fmt"
	"os"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the als command tree: compress, decompress,
// info, each a Cobra subcommand with its own flags struct and RunE
// closure, mirroring how the migration CLI this module started from
// wires its own diff/migrate/apply subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "als",
		Short: "Adaptive Logic Stream tabular codec",
	}

	root.AddCommand(compressCmd())
	root.AddCommand(decompressCmd())
	root.AddCommand(infoCmd())

	return root
}

// Execute runs the als CLI against os.Args (extended with any
// ALS_EXTRA_ARGS a wrapper script exported) and returns the process exit
// code spec §6 defines: 0 success, 1 user error, 2 I/O error.
func Execute() int {
	args, err := extraArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return 0
}

// extraArgs appends any shell-quoted arguments from ALS_EXTRA_ARGS after
// args, letting a wrapper script inject flags (e.g. a fixed --config
// path) without the caller having to re-quote them itself.
func extraArgs(args []string) ([]string, error) {
	raw := os.Getenv("ALS_EXTRA_ARGS")
	if raw == "" {
		return args, nil
	}
	extra, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("cli: parse ALS_EXTRA_ARGS: %w", err)
	}
	return append(args, extra...), nil
}
