// Package logging builds the logr.Logger shared by the moonshine tools.
// Records are zap JSON on the given writer (stderr for the CLIs).
package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
)

// NewLogger returns a logger writing to w. Verbose enables V(DEBUG) records.
func NewLogger(w io.Writer, verbose bool) logr.Logger {
	level := zapcore.InfoLevel
	if verbose {
		// logr V(n) maps to zap level -n
		level = zapcore.Level(-DEBUG)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level)
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger returns a logger that drops everything.
func NewTestLogger() logr.Logger {
	return logr.Discard()
}
