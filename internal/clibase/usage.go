// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"moonshine/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific usage lines before the flag listing.
func UsageCommon(fs *pflag.FlagSet, name, summary string, out func() io.Writer, extra func(out io.Writer)) {
	fs.Usage = func() {
		w := out()
		fmt.Fprintf(w, "%s – %s\n\n", name, summary)
		fmt.Fprintf(w, "Version: %s\n\n", version.Version)
		if extra != nil {
			extra(w)
		}
		fmt.Fprintln(w, "\nOptions:")
		fmt.Fprint(w, fs.FlagUsages())
		fmt.Fprintln(w, "  -h, --help                 show this help and exit")
		fmt.Fprintf(w, "\nEvery option can also be set as %s_<OPTION> (dashes become underscores).\n", EnvPrefix)
	}
}
