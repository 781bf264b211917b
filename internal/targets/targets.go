// Package targets reads per-well detector (target) assignments from the
// plate setup document of an EDS archive.
package targets

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"multicomponent/internal/container"
	"multicomponent/internal/field"
	"multicomponent/internal/plate"
	"multicomponent/internal/textin"
)

// DetectorTaskFeature is the only feature id whose values are read.
const DetectorTaskFeature = "detector-task"

type document struct {
	Rows        []string     `xml:"Rows"`
	Columns     []string     `xml:"Columns"`
	FeatureMaps []featureMap `xml:"FeatureMap"`
}

type featureMap struct {
	ID     []string       `xml:"Feature>Id"`
	Values []featureValue `xml:"FeatureValue"`
}

type featureValue struct {
	Index []string       `xml:"Index"`
	Tasks []detectorTask `xml:"FeatureItem>DetectorTaskList>DetectorTask"`
}

type detectorTask struct {
	Name []string `xml:"Detector>Name"`
}

// Assignment is one output row: Well is 1-based.
type Assignment struct {
	Well   int
	Target string
}

// PlateSetup is a parsed plate setup document.
type PlateSetup struct {
	Rows    int
	Columns int

	names map[int]string
}

// Load opens the EDS archive at path and parses its plate setup member.
func Load(path string) (*PlateSetup, error) {
	var p *PlateSetup
	err := container.With(path, container.PlateSetupSuffix, "plate_setup", func(r io.Reader) error {
		var err error
		p, err = Parse(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes a plate setup document. Feature maps other than
// detector-task are ignored; within a well the first DetectorTask names the
// target, and a later FeatureValue for the same well replaces an earlier one.
func Parse(r io.Reader) (*PlateSetup, error) {
	var doc document
	if err := textin.NewXMLDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("plate setup XML: %w", err)
	}
	rows, err := field.Count("Rows", field.First(doc.Rows))
	if err != nil {
		return nil, err
	}
	cols, err := field.Count("Columns", field.First(doc.Columns))
	if err != nil {
		return nil, err
	}
	p := &PlateSetup{Rows: rows, Columns: cols, names: make(map[int]string)}

	for _, fm := range doc.FeatureMaps {
		if strings.TrimSpace(field.First(fm.ID)) != DetectorTaskFeature {
			continue
		}
		for _, fv := range fm.Values {
			well, err := field.Int("FeatureValue Index", field.First(fv.Index))
			if err != nil {
				return nil, err
			}
			what := fmt.Sprintf("detector name of well index %d", well)
			if len(fv.Tasks) == 0 {
				return nil, &field.ParseError{Field: what, Err: field.ErrMissing}
			}
			name, err := field.Text(what, field.First(fv.Tasks[0].Name))
			if err != nil {
				return nil, err
			}
			p.names[well] = name
		}
	}
	return p, nil
}

// WellCount is Rows × Columns.
func (p *PlateSetup) WellCount() int { return p.Rows * p.Columns }

// Target returns the detector assigned to a 0-based well index.
func (p *PlateSetup) Target(well int) (string, bool) {
	name, ok := p.names[well]
	return name, ok
}

// Surplus lists assigned well indices outside [0, WellCount).
func (p *PlateSetup) Surplus() []int {
	var out []int
	n := p.WellCount()
	for w := range p.names {
		if w < 0 || w >= n {
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out
}

// Assignments returns one row per well of the plate. A well without a
// detector-task target is a *plate.MissingWellDataError.
func (p *PlateSetup) Assignments() ([]Assignment, error) {
	n := p.WellCount()
	out := make([]Assignment, 0, n)
	for w := 0; w < n; w++ {
		name, ok := p.names[w]
		if !ok {
			return nil, &plate.MissingWellDataError{Well: w + 1, Detail: "no detector-task target"}
		}
		out = append(out, Assignment{Well: w + 1, Target: name})
	}
	return out, nil
}
