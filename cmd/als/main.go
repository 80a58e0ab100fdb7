// Command als is the command-line front end for the Adaptive Logic
// Stream tabular codec: compress CSV/JSON into ALS or CTX, decompress
// back, or summarize an existing document.
package main

import (
	"os"

	"als/cli"
)

func main() {
	os.Exit(cli.Execute())
}
