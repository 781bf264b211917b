// Package amp reads the tab-delimited amplification export: one line per
// well per cycle carrying raw ROX and the FAM/ROX ratio.
package amp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"multicomponent/internal/field"
	"multicomponent/internal/plate"
	"multicomponent/internal/signal"
	"multicomponent/internal/textin"
)

// HeaderToken starts the column-header line, which is skipped.
const HeaderToken = "Experiment Name"

// 0-based column positions.
const (
	colWell  = 2
	colRatio = 5
	colCycle = 8
	colROX   = 9
)

// FileOpenError reports an amplification file that cannot be read.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open amplification text file %q", e.Path)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// Record is one data line.
type Record struct {
	Label plate.Label
	Cycle int
	ROX   float64
	FAM   float64
}

// ParseRecord decodes a trimmed, tab-delimited data line.
// The cycle is floored; FAM is the ratio column scaled by ROX.
func ParseRecord(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) <= colROX {
		return Record{}, &field.ParseError{
			Field: "record",
			Value: line,
			Err:   fmt.Errorf("want at least %d tab-separated fields, got %d", colROX+1, len(f)),
		}
	}
	label, err := plate.ParseLabel(f[colWell])
	if err != nil {
		return Record{}, err
	}
	ratio, err := field.Float("FAM ratio", f[colRatio])
	if err != nil {
		return Record{}, err
	}
	cycle, err := field.Float("cycle", f[colCycle])
	if err != nil {
		return Record{}, err
	}
	rox, err := field.Float("ROX", f[colROX])
	if err != nil {
		return Record{}, err
	}
	return Record{Label: label, Cycle: int(math.Floor(cycle)), ROX: rox, FAM: ratio * rox}, nil
}

func skip(line string) bool {
	return line == "" || line[0] == '#' || strings.HasPrefix(line, HeaderToken)
}

// Amplification holds the readings of one file keyed by well label.
type Amplification struct {
	readings *signal.Builder[plate.Label]
}

// Parse reads every record from r. A later record for the same well and
// cycle replaces an earlier one.
func Parse(r io.Reader) (*Amplification, error) {
	a := &Amplification{readings: signal.NewBuilder[plate.Label]()}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if skip(line) {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		a.readings.Set(rec.Label, rec.Cycle, signal.Reading{ROX: rec.ROX, FAM: rec.FAM})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

// Load opens path ("-" for stdin, gzip accepted) decoded from charset and parses it.
func Load(path, charset string) (*Amplification, error) {
	rc, err := textin.Open(path, charset)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	a, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Labels returns the observed well labels in first-seen order.
func (a *Amplification) Labels() []plate.Label { return a.readings.Keys() }

// Rectangle derives the plate rectangle from the observed labels.
func (a *Amplification) Rectangle() (plate.Rectangle, error) {
	return plate.NewRectangle(a.readings.Keys())
}

// Table emits wells in ascending linear index, each with its observed
// cycles ascending. Every index of the rectangle must have data.
func (a *Amplification) Table() (*signal.Table, error) {
	rect, err := a.Rectangle()
	if err != nil {
		return nil, err
	}
	return signal.Freeze(a.readings, rect.Indices(), rect.Label, nil)
}
