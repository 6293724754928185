// internal/writers/report.go
package writers

import (
	"errors"
	"io"
	"strconv"
	"syscall"

	"moonshine/internal/version"
	"moonshine/pkg/api"
)

// Section is one table of a report. Rows and Records run in parallel:
// Rows render as TSV, Records (pkg/api v1 values) feed JSONL.
type Section struct {
	Title   string
	Columns []string
	Rows    [][]string
	Records []any
}

// Add appends one row and its wire record.
func (s *Section) Add(record any, cells ...string) {
	s.Rows = append(s.Rows, cells)
	s.Records = append(s.Records, record)
}

// Report is everything a tool emits for one run.
type Report struct {
	RunID    string
	Tool     string
	Sections []*Section
	Data     any // wire payload for json/yaml
}

// Envelope wraps the report data for JSON/YAML.
func (r Report) Envelope() api.ReportV1 {
	return api.ReportV1{RunID: r.RunID, Tool: r.Tool, Version: version.Version, Data: r.Data}
}

// F formats v with prec decimals.
func F(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) may close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
