package output

import (
	"bytes"
	"testing"

	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
)

func TestWriteSignalTSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []signal.Row{
		{Well: 1, Cycle: 1, ROX: 1234.5678, FAM: 0.004},
		{Well: 1, Cycle: 2, ROX: 2, FAM: -1.005},
	}
	if err := WriteSignalTSV(&buf, rows, true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	want := "well\tcycle\tROX\tFAM\n1\t1\t1234.57\t0.00\n1\t2\t2.00\t-1.00\n"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestWriteSignalTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSignalTSV(&buf, []signal.Row{{Well: 3, Cycle: 40, ROX: 1, FAM: 2}}, false); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	if buf.String() != "3\t40\t1.00\t2.00\n" {
		t.Fatalf("unexpected %q", buf.String())
	}
}

func TestWriteTargetTSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []targets.Assignment{{Well: 1, Target: "N1"}, {Well: 2, Target: "RNase P"}}
	if err := WriteTargetTSV(&buf, rows, true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	if buf.String() != "well\ttarget\n1\tN1\n2\tRNase P\n" {
		t.Fatalf("unexpected %q", buf.String())
	}
}
