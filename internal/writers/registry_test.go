package writers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, sampleReport(), true)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestFormats(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "json,jsonl,text,yaml" {
		t.Fatalf("formats = %s", got)
	}
}

func TestRegisterReplaces(t *testing.T) {
	orig := reportWriters["text"]
	defer Register("text", orig)

	Register("text", func(w io.Writer, _ Report, _ bool) error {
		_, err := io.WriteString(w, "stub")
		return err
	})
	var b bytes.Buffer
	if err := Write("text", &b, sampleReport(), true); err != nil || b.String() != "stub" {
		t.Fatalf("replacement writer not used: %q %v", b.String(), err)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBrokenPipeSurfaces(t *testing.T) {
	err := Write("text", failWriter{syscall.EPIPE}, sampleReport(), true)
	if !IsBrokenPipe(err) {
		t.Fatalf("want broken pipe, got %v", err)
	}
	err = Write("jsonl", failWriter{io.ErrClosedPipe}, sampleReport(), true)
	if !IsBrokenPipe(err) {
		t.Fatalf("want closed pipe, got %v", err)
	}
	if IsBrokenPipe(errors.New("disk full")) || IsBrokenPipe(nil) {
		t.Fatal("false positive")
	}
}
