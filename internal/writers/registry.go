// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// WriteFunc renders a report in one format.
type WriteFunc func(w io.Writer, r Report, header bool) error

// Writer registry (format → handler). Formats register in init() blocks.
var reportWriters = map[string]WriteFunc{}

// Register adds or replaces the writer for format.
func Register(format string, fn WriteFunc) { reportWriters[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r Report, header bool) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r, header)
}
