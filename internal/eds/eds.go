// Package eds reads the multicomponent (per-dye fluorescence) document of an
// EDS archive into a signal table.
package eds

import (
	"fmt"
	"io"
	"sort"

	"multicomponent/internal/container"
	"multicomponent/internal/field"
	"multicomponent/internal/plate"
	"multicomponent/internal/signal"
	"multicomponent/internal/textin"
)

// DyeCountMismatchError reports a SignalData element with more CycleData
// blocks than its well has dyes.
type DyeCountMismatchError struct {
	Well   int
	Dyes   int
	Blocks int
}

func (e *DyeCountMismatchError) Error() string {
	return fmt.Sprintf("well index %d: %d CycleData blocks but %d dyes listed", e.Well, e.Blocks, e.Dyes)
}

type document struct {
	WellCount  []string     `xml:"WellCount"`
	CycleCount []string     `xml:"CycleCount"`
	DyeData    []dyeData    `xml:"DyeData"`
	SignalData []signalData `xml:"SignalData"`
}

type dyeData struct {
	WellIndex string   `xml:"WellIndex,attr"`
	DyeList   []string `xml:"DyeList"`
}

type signalData struct {
	WellIndex string   `xml:"WellIndex,attr"`
	CycleData []string `xml:"CycleData"`
}

// Multicomponent is a parsed multicomponent document. Wells are 0-based
// indices as stored in the file.
type Multicomponent struct {
	WellCount  int
	CycleCount int

	dyes    map[int][]string
	signals map[int]map[string][]float64
}

// Load opens the EDS archive at path and parses its multicomponent member.
func Load(path string) (*Multicomponent, error) {
	var m *Multicomponent
	err := container.With(path, container.MulticomponentSuffix, "multicomponent", func(r io.Reader) error {
		var err error
		m, err = Parse(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Parse decodes a multicomponent XML document.
func Parse(r io.Reader) (*Multicomponent, error) {
	var doc document
	if err := textin.NewXMLDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("multicomponent XML: %w", err)
	}
	wellN, err := field.Count("WellCount", field.First(doc.WellCount))
	if err != nil {
		return nil, err
	}
	cycleN, err := field.Count("CycleCount", field.First(doc.CycleCount))
	if err != nil {
		return nil, err
	}
	m := &Multicomponent{
		WellCount:  wellN,
		CycleCount: cycleN,
		dyes:       make(map[int][]string, len(doc.DyeData)),
		signals:    make(map[int]map[string][]float64, len(doc.SignalData)),
	}

	for _, d := range doc.DyeData {
		well, err := field.Int("DyeData WellIndex", d.WellIndex)
		if err != nil {
			return nil, err
		}
		dyes, err := field.List(fmt.Sprintf("DyeList of well index %d", well), field.First(d.DyeList))
		if err != nil {
			return nil, err
		}
		m.dyes[well] = dyes
	}

	// The i-th CycleData block belongs to the i-th dye of the well's DyeList.
	for _, s := range doc.SignalData {
		well, err := field.Int("SignalData WellIndex", s.WellIndex)
		if err != nil {
			return nil, err
		}
		dyes := m.dyes[well]
		if len(s.CycleData) > len(dyes) {
			return nil, &DyeCountMismatchError{Well: well, Dyes: len(dyes), Blocks: len(s.CycleData)}
		}
		series := make(map[string][]float64, len(s.CycleData))
		for i, block := range s.CycleData {
			vals, err := field.FloatList(fmt.Sprintf("CycleData %d of well index %d", i+1, well), block)
			if err != nil {
				return nil, err
			}
			series[dyes[i]] = vals
		}
		m.signals[well] = series
	}
	return m, nil
}

// Dyes returns the dye list of a well in document order.
func (m *Multicomponent) Dyes(well int) []string {
	return append([]string(nil), m.dyes[well]...)
}

// Surplus lists well indices that carry signal data but lie outside
// [0, WellCount). They are never emitted.
func (m *Multicomponent) Surplus() []int {
	var out []int
	for w := range m.signals {
		if w < 0 || w >= m.WellCount {
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out
}

func (m *Multicomponent) dyeSeries(well int, dye string) ([]float64, error) {
	series, ok := m.signals[well]
	if !ok {
		return nil, &plate.MissingWellDataError{Well: well + 1, Detail: "no signal data"}
	}
	vals, ok := series[dye]
	if !ok {
		return nil, &plate.MissingWellDataError{Well: well + 1, Detail: "no " + dye + " signal"}
	}
	if len(vals) < m.CycleCount {
		return nil, &plate.MissingWellDataError{
			Well:   well + 1,
			Detail: fmt.Sprintf("%s signal has %d cycles, want %d", dye, len(vals), m.CycleCount),
		}
	}
	return vals, nil
}

// Table builds the WellCount × CycleCount grid. Wells and cycles are
// numbered from 1 in the result.
func (m *Multicomponent) Table() (*signal.Table, error) {
	b := signal.NewBuilder[int]()
	for w := 0; w < m.WellCount; w++ {
		rox, err := m.dyeSeries(w, signal.DyeROX)
		if err != nil {
			return nil, err
		}
		fam, err := m.dyeSeries(w, signal.DyeFAM)
		if err != nil {
			return nil, err
		}
		for c := 0; c < m.CycleCount; c++ {
			b.Set(w+1, c+1, signal.Reading{ROX: rox[c], FAM: fam[c]})
		}
	}
	return signal.Freeze(b, seq(m.WellCount), func(w int) int { return w }, seq(m.CycleCount))
}

// seq returns 1..n.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
