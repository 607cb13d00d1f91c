// Package main implements the turtle command-line interface: an
// interactive read-eval-print loop for the turtle expression language
// (see SPEC_FULL.md). The binary takes no flags and no positional
// arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kelchtermans/turtle/pkg/repl"
)

func main() {
	os.Exit(run())
}

// run builds and executes the root command, returning the process
// exit code rather than calling os.Exit directly so main stays the
// only place that touches the real process exit.
func run() int {
	exitCode := 0

	root := &cobra.Command{
		Use:           "turtle",
		Short:         "An interactive interpreter for the turtle expression language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = repl.Run()

			return nil
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "turtle:", err)

		return 1
	}

	return exitCode
}
