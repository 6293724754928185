// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"moonshine/internal/writers"
)

// EnvPrefix is prepended to upper-cased flag names for env overrides,
// e.g. --leak-pct ← MOONSHINE_LEAK_PCT.
const EnvPrefix = "MOONSHINE"

// Common holds CLI fields shared by every moonshine tool.
type Common struct {
	// Input
	ConfigPath string

	// Output
	Output     string // text|json|jsonl|yaml
	Header     bool
	DumpConfig bool
	Examples   bool

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *pflag.FlagSet, c *Common) *bool {
	fs.StringVarP(&c.Output, "output", "o", "text", "output: "+strings.Join(writers.Formats(), " | "))
	noHeader := fs.Bool("no-header", false, "suppress header line")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit")

	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging on stderr")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")
	return noHeader
}

// controlFlags only ever come from the command line; MOONSHINE_VERSION and
// friends are common build variables.
var controlFlags = map[string]struct{}{"help": {}, "version": {}, "examples": {}}

// ApplyEnv fills every flag the user did not set on the command line from
// its MOONSHINE_<FLAG> environment variable, if present.
func ApplyEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if _, control := controlFlags[f.Name]; control {
			return
		}
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		val := v.GetString(f.Name)
		if e := fs.Set(f.Name, val); e != nil {
			err = fmt.Errorf("env %s_%s=%q: %v", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), val, e)
		}
	})
	return err
}

// AfterParse applies env overrides, finalizes header, then runs shared validation.
func AfterParse(fs *pflag.FlagSet, c *Common, noHeader *bool) error {
	if err := ApplyEnv(fs); err != nil {
		return err
	}
	c.Header = !*noHeader
	if c.Examples {
		return ErrPrintedAndExitOK
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if !slices.Contains(writers.Formats(), c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(writers.Formats(), " | "))
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// Shared returns a copy of the common fields; tool options embed Common.
func (c Common) Shared() Common { return c }

// RegisterConfig wires the sourcing-config flags. Only tools that read the
// feedstock catalog call it.
func RegisterConfig(fs *pflag.FlagSet, c *Common) {
	fs.StringVar(&c.ConfigPath, "config", "", "sourcing config YAML (default: built-in reference data)")
	fs.BoolVar(&c.DumpConfig, "dump-config", false, "print the effective sourcing config as YAML and exit")
}
