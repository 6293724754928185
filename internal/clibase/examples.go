// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when --examples was given.
// Apps print the examples and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart block: one command line per entry.
func PrintExamples(out io.Writer, name string, lines []string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	for _, l := range lines {
		_, _ = fmt.Fprintf(out, "  %s %s\n", name, l)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
