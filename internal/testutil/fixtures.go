// Package testutil builds synthetic instrument exports (EDS archives, amp
// text files) for tests.
package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Member is one file inside a synthetic archive.
type Member struct {
	Name string
	Body string
}

// WriteFile writes body to name inside a per-test temp dir and returns the path.
func WriteFile(t testing.TB, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

// WriteZip stores members, in order, in a zip archive called name.
func WriteZip(t testing.TB, name string, members ...Member) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create %s: %v", fn, err)
	}
	zw := zip.NewWriter(fh)
	for _, m := range members {
		w, err := zw.Create(m.Name)
		if err != nil {
			t.Fatalf("zip create %s: %v", m.Name, err)
		}
		if _, err := w.Write([]byte(m.Body)); err != nil {
			t.Fatalf("zip write %s: %v", m.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close %s: %v", fn, err)
	}
	return fn
}

// Well is the multicomponent data of one well: Series[i] belongs to Dyes[i].
type Well struct {
	Index  int
	Dyes   []string
	Series [][]float64
}

func floats(vs []float64) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

// MulticomponentXML renders a multicomponent document.
func MulticomponentXML(wellCount, cycleCount int, wells ...Well) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<MulticomponentData>\n")
	fmt.Fprintf(&b, "  <WellCount>%d</WellCount>\n  <CycleCount>%d</CycleCount>\n", wellCount, cycleCount)
	for _, w := range wells {
		fmt.Fprintf(&b, "  <DyeData WellIndex=\"%d\">\n    <DyeList>[%s]</DyeList>\n  </DyeData>\n", w.Index, strings.Join(w.Dyes, ", "))
	}
	for _, w := range wells {
		fmt.Fprintf(&b, "  <SignalData WellIndex=\"%d\">\n", w.Index)
		for _, s := range w.Series {
			fmt.Fprintf(&b, "    <CycleData>%s</CycleData>\n", floats(s))
		}
		b.WriteString("  </SignalData>\n")
	}
	b.WriteString("</MulticomponentData>\n")
	return b.String()
}

// Ramp returns n values start, start+step, ...
func Ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// UniformWells gives every well in [0, n) dyes ROX and FAM with ramps over cycles.
func UniformWells(n, cycles int) []Well {
	out := make([]Well, n)
	for i := range out {
		out[i] = Well{
			Index:  i,
			Dyes:   []string{"ROX", "FAM"},
			Series: [][]float64{Ramp(cycles, 1000+float64(i), 1), Ramp(cycles, 10*float64(i), 0.5)},
		}
	}
	return out
}

// Assignment is a well index and the detector name assigned to it.
type Assignment struct {
	Index int
	Name  string
}

// FeatureMap is one FeatureMap element of a plate setup document.
type FeatureMap struct {
	ID     string
	Values []Assignment
}

// PlateSetupXML renders a plate setup document.
func PlateSetupXML(rows, cols int, maps ...FeatureMap) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<Plate>\n")
	fmt.Fprintf(&b, "  <Rows>%d</Rows>\n  <Columns>%d</Columns>\n", rows, cols)
	for _, m := range maps {
		fmt.Fprintf(&b, "  <FeatureMap>\n    <Feature><Id>%s</Id><Name>%s</Name></Feature>\n", m.ID, m.ID)
		for _, v := range m.Values {
			fmt.Fprintf(&b, "    <FeatureValue>\n      <Index>%d</Index>\n      <FeatureItem>\n", v.Index)
			fmt.Fprintf(&b, "        <DetectorTaskList><DetectorTask><Task>UNKNOWN</Task><Detector><Name>%s</Name><Reporter>FAM</Reporter></Detector></DetectorTask></DetectorTaskList>\n", v.Name)
			b.WriteString("      </FeatureItem>\n    </FeatureValue>\n")
		}
		b.WriteString("  </FeatureMap>\n")
	}
	b.WriteString("</Plate>\n")
	return b.String()
}

// AmpHeader is the comment block and column header of an amplification export.
const AmpHeader = "# Block Type = 96-Well Block (0.2mL)\n" +
	"# Chemistry = TAQMAN\n" +
	"\n" +
	"Experiment Name\tWell\tWell Position\tSample Name\tTarget Name\tRn\tDelta Rn\tStage\tCycle\tROX\n"

// AmpLine renders one amplification record. Fields 1, 2, 4, 5, 7 and 8 are
// filler; ratio, cycle and rox land in columns 6, 9 and 10.
func AmpLine(label string, ratio, cycle, rox float64) string {
	return fmt.Sprintf("run1\t0\t%s\tS\tT\t%v\t0.1\t1\t%v\t%v\n", label, ratio, cycle, rox)
}
