// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"
)

func init() {
	Register("json", WriteJSON)
	Register("jsonl", WriteJSONL)
}

// WriteJSON writes the v1 envelope as indented JSON.
func WriteJSON(w io.Writer, r Report, _ bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Envelope())
}

// WriteJSONL writes every section record as one JSON line.
func WriteJSONL(w io.Writer, r Report, _ bool) error {
	enc := json.NewEncoder(w)
	for _, s := range r.Sections {
		for _, rec := range s.Records {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
