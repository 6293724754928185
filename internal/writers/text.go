// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
	"strings"
)

func init() { Register("text", WriteText) }

// WriteText prints each section as TSV, preceded by a "# title" line and
// an optional column header. Sections are separated by a blank line.
func WriteText(w io.Writer, r Report, header bool) error {
	first := true
	for _, s := range r.Sections {
		if len(s.Rows) == 0 {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if s.Title != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", s.Title); err != nil {
				return err
			}
		}
		if header && len(s.Columns) > 0 {
			if _, err := fmt.Fprintln(w, strings.Join(s.Columns, "\t")); err != nil {
				return err
			}
		}
		for _, row := range s.Rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
	}
	return nil
}
