// internal/writers/yaml.go
package writers

import (
	"io"

	"gopkg.in/yaml.v3"
)

func init() { Register("yaml", WriteYAML) }

// WriteYAML writes the v1 envelope as a YAML document.
func WriteYAML(w io.Writer, r Report, _ bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Envelope()); err != nil {
		return err
	}
	return enc.Close()
}
