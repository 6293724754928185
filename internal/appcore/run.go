// internal/appcore/run.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"moonshine/internal/clibase"
	"moonshine/internal/cmdutil"
	"moonshine/internal/config"
	"moonshine/internal/logging"
	"moonshine/internal/version"
	"moonshine/internal/writers"
)

// Options is implemented by every tool's parsed options (via clibase.Common).
type Options interface {
	Shared() clibase.Common
}

// Env carries what a tool's Build step may use.
type Env struct {
	Log    logr.Logger
	Config *config.Config // nil unless Tool.NeedsConfig
	Warn   func(format string, a ...any)
}

// Tool describes one moonshine command.
type Tool[O Options] struct {
	Name        string
	Summary     string
	Examples    []string
	NeedsConfig bool

	// Parse registers flags on fs and parses argv.
	Parse func(fs *pflag.FlagSet, argv []string) (O, error)
	// Build runs the computation and assembles the report.
	Build func(ctx context.Context, env Env, opts O) (writers.Report, error)
}

// Run executes t and returns the process exit code:
// 0 ok, 2 usage/config/input error, 3 output error, 130 interrupted.
func Run[O Options](ctx context.Context, argv []string, stdout, stderr io.Writer, t Tool[O]) int {
	outw := bufio.NewWriter(stdout)

	fs := pflag.NewFlagSet(t.Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	clibase.UsageCommon(fs, t.Name, t.Summary, func() io.Writer { return outw }, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Usage:")
		_, _ = fmt.Fprintf(w, "  %s [options]\n", t.Name)
	})

	opts, err := t.Parse(fs, argv)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		// pflag has already printed usage.
		return flush(outw, stderr, 0)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		clibase.PrintExamples(outw, t.Name, t.Examples)
		return flush(outw, stderr, 0)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.Usage()
		return flush(outw, stderr, 2)
	}
	common := opts.Shared()

	if common.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return flush(outw, stderr, 0)
	}

	log := logging.NewLogger(stderr, common.Verbose).WithName(t.Name)
	if common.Quiet {
		log = logr.Discard()
	}
	env := Env{
		Log: log,
		Warn: func(format string, a ...any) {
			cmdutil.Warnf(stderr, common.Quiet, format, a...)
		},
	}

	if t.NeedsConfig || common.DumpConfig {
		cfg, err := config.Load(common.ConfigPath, log)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 2
		}
		if common.DumpConfig {
			if err := cfg.Dump(outw); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
			return flush(outw, stderr, 0)
		}
		env.Config = cfg
	}

	if ctx.Err() != nil {
		return 130
	}
	rep, err := t.Build(ctx, env, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	rep.Tool = t.Name
	if rep.RunID == "" {
		rep.RunID = uuid.NewString()
	}
	log.V(logging.DEBUG).Info("Writing report", "runID", rep.RunID, "format", common.Output)

	if err := writers.Write(common.Output, outw, rep, common.Header); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flush(outw, stderr, 0)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
