// internal/clibase/common_test.go
package clibase

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Common, error) {
	t.Helper()
	var c Common
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	noHeader := Register(fs, &c)
	RegisterConfig(fs, &c)
	require.NoError(t, fs.Parse(args))
	return c, AfterParse(fs, &c, noHeader)
}

func TestCommonDefaults(t *testing.T) {
	c, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "text", c.Output)
	assert.True(t, c.Header)
	assert.Empty(t, c.ConfigPath)
	assert.Equal(t, c, c.Shared())
}

func TestApplyEnvFillsUnsetFlags(t *testing.T) {
	t.Setenv("MOONSHINE_OUTPUT", "yaml")
	t.Setenv("MOONSHINE_NO_HEADER", "true")
	t.Setenv("MOONSHINE_DUMP_CONFIG", "1")
	c, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Output)
	assert.False(t, c.Header)
	assert.True(t, c.DumpConfig)
}

func TestCommandLineBeatsEnv(t *testing.T) {
	t.Setenv("MOONSHINE_OUTPUT", "yaml")
	c, err := parse(t, "-o", "jsonl")
	require.NoError(t, err)
	assert.Equal(t, "jsonl", c.Output)
}

func TestBadEnvValue(t *testing.T) {
	t.Setenv("MOONSHINE_QUIET", "maybe")
	_, err := parse(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MOONSHINE_QUIET")
}

func TestValidate(t *testing.T) {
	err := Validate(&Common{Output: "csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want json | jsonl | text | yaml")
	assert.Error(t, Validate(&Common{Output: "text", Quiet: true, Verbose: true}))
	assert.NoError(t, Validate(&Common{Output: "json", Verbose: true}))
}

func TestExamplesShortCircuit(t *testing.T) {
	_, err := parse(t, "--examples", "-o", "csv")
	assert.True(t, errors.Is(err, ErrPrintedAndExitOK))
}

func TestUsageAndExamplesOutput(t *testing.T) {
	var c Common
	var buf bytes.Buffer
	fs := pflag.NewFlagSet("tool", pflag.ContinueOnError)
	Register(fs, &c)
	UsageCommon(fs, "tool", "does things", func() io.Writer { return &buf }, nil)
	fs.Usage()
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "tool – does things\n"))
	assert.Contains(t, out, "--output")
	assert.Contains(t, out, "json | jsonl | text | yaml")
	assert.Contains(t, out, "MOONSHINE_<OPTION>")
	assert.NotContains(t, out, "--config")

	buf.Reset()
	PrintExamples(&buf, "tool", []string{"--tdp 5"})
	assert.Contains(t, buf.String(), "  tool --tdp 5\n")
}

func TestApplyEnvIgnoresControlFlags(t *testing.T) {
	t.Setenv("MOONSHINE_VERSION", "1.4.0")
	t.Setenv("MOONSHINE_EXAMPLES", "true")
	t.Setenv("MOONSHINE_HELP", "yes")
	c, err := parse(t)
	require.NoError(t, err)
	assert.False(t, c.Version)
	assert.False(t, c.Examples)
}
