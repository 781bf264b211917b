package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"multicomponent/internal/output"
	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
)

func TestUnknownSignalFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteSignal("nope-format", &b, nil, true)
	if err == nil || !strings.Contains(err.Error(), "unknown signal format") {
		t.Fatalf("want 'unknown signal format' error, got: %v", err)
	}
}

func TestUnknownTargetFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteTarget("wat", &b, nil, true)
	if err == nil || !strings.Contains(err.Error(), "unknown target format") {
		t.Fatalf("want 'unknown target format' error, got: %v", err)
	}
}

func TestEveryFormatRegistered(t *testing.T) {
	for _, f := range output.Formats {
		if _, ok := SignalWriters[f]; !ok {
			t.Errorf("no signal writer for %q", f)
		}
		if _, ok := TargetWriters[f]; !ok {
			t.Errorf("no target writer for %q", f)
		}
	}
}

func TestWriteSignalJSONL(t *testing.T) {
	var b bytes.Buffer
	rows := []signal.Row{{Well: 1, Cycle: 1, ROX: 2, FAM: 3}, {Well: 1, Cycle: 2, ROX: 4, FAM: 5}}
	if err := WriteSignal(output.FormatJSONL, &b, rows, true); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", b.String())
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &got); err != nil || got["cycle"].(float64) != 2 {
		t.Fatalf("bad line %q: %v", lines[1], err)
	}
}

func TestWriteTargetText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteTarget(output.FormatText, &b, []targets.Assignment{{Well: 1, Target: "N1"}}, false); err != nil {
		t.Fatalf("text: %v", err)
	}
	if b.String() != "1\tN1\n" {
		t.Fatalf("unexpected %q", b.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("pipe errors not recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatalf("false positive")
	}
}
