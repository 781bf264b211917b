package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func TestErrorfPlainToBuffer(t *testing.T) {
	// Colour forced on globally, as fatih/color does for a terminal stdout.
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false

	var b bytes.Buffer
	Errorf(&b, "missing data for well %d", 3)
	if b.String() != "ERROR: missing data for well 3\n" {
		t.Fatalf("unexpected %q", b.String())
	}
}

func TestErrorfPlainToRedirectedFile(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false

	fn := filepath.Join(t.TempDir(), "err.log")
	f, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	Errorf(f, "boom")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ERROR: boom\n" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestWarnfQuiet(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false

	var b bytes.Buffer
	Warnf(&b, true, "ignored")
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress warnings, got %q", b.String())
	}
	Warnf(&b, false, "ignoring well %d", 9)
	if b.String() != "WARN: ignoring well 9\n" {
		t.Fatalf("unexpected %q", b.String())
	}
}
