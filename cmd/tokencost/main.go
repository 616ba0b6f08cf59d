// Command tokencost counts and prices tokens for newline-delimited JSON
// text records against the cl100k_base/o200k_base vocabularies (spec.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokencost/tokencost/internal/modelreg"
	"github.com/tokencost/tokencost/internal/xerrors"
)

// quietOutput mirrors the pipe subcommand's --quiet flag (threaded through
// config.Run.Quiet) so main's own terminating-error print can honor it too;
// subcommands without a --quiet flag leave it at its zero value, false.
var quietOutput bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		kind := xerrors.KindOf(err)
		if !quietOutput {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(kind.ExitCode())
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tokencost",
		Short:         "Count and price LLM tokens for JSON-lines text records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registry := modelreg.Default()

	root.AddCommand(
		newPipeCmd(registry),
		newDecodeCmd(registry),
		newSelfcheckCmd(),
	)
	return root
}
