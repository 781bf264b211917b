// Package signal holds the unified per-well, per-cycle ROX/FAM table that
// every extractor produces.
//
// Extractors fill a Builder in one pass, then Freeze it into an immutable
// Table. Any well required at freeze time but absent from the builder is a
// *plate.MissingWellDataError; nothing is defaulted.
package signal

import (
	"fmt"
	"sort"

	"multicomponent/internal/plate"
)

// Dye names reported by this tool.
const (
	DyeROX = "ROX"
	DyeFAM = "FAM"
)

// Reading is one cycle of one well.
type Reading struct {
	ROX float64
	FAM float64
}

// Point is a Reading at a cycle number.
type Point struct {
	Cycle int
	Reading
}

// Row is one output line.
type Row struct {
	Well  int
	Cycle int
	ROX   float64
	FAM   float64
}

// Builder accumulates readings keyed by K (a well index or a well label).
// A second Set for the same key and cycle replaces the first.
type Builder[K comparable] struct {
	data  map[K]map[int]Reading
	order []K
}

func NewBuilder[K comparable]() *Builder[K] {
	return &Builder[K]{data: make(map[K]map[int]Reading)}
}

func (b *Builder[K]) Set(key K, cycle int, r Reading) {
	cycles, ok := b.data[key]
	if !ok {
		cycles = make(map[int]Reading)
		b.data[key] = cycles
		b.order = append(b.order, key)
	}
	cycles[cycle] = r
}

// Keys returns the keys in first-seen order.
func (b *Builder[K]) Keys() []K { return append([]K(nil), b.order...) }

func (b *Builder[K]) Has(key K) bool {
	_, ok := b.data[key]
	return ok
}

// Table is the frozen signal table.
type Table struct {
	wells  []int
	series map[int][]Point
}

// Freeze resolves every output well through key and copies its readings.
// With a non-nil cycles list each well must carry exactly those cycles and
// is emitted in that order; with nil, each well's observed cycles are
// emitted ascending.
func Freeze[K comparable](b *Builder[K], wells []int, key func(well int) K, cycles []int) (*Table, error) {
	t := &Table{
		wells:  append([]int(nil), wells...),
		series: make(map[int][]Point, len(wells)),
	}
	for _, w := range wells {
		readings, ok := b.data[key(w)]
		if !ok {
			return nil, &plate.MissingWellDataError{Well: w}
		}
		want := cycles
		if want == nil {
			want = make([]int, 0, len(readings))
			for c := range readings {
				want = append(want, c)
			}
			sort.Ints(want)
		}
		pts := make([]Point, 0, len(want))
		for _, c := range want {
			r, ok := readings[c]
			if !ok {
				return nil, &plate.MissingWellDataError{Well: w, Detail: fmt.Sprintf("no reading for cycle %d", c)}
			}
			pts = append(pts, Point{Cycle: c, Reading: r})
		}
		t.series[w] = pts
	}
	return t, nil
}

// Wells returns the output wells in emission order.
func (t *Table) Wells() []int { return append([]int(nil), t.wells...) }

// Series returns the points of one well in emission order.
func (t *Table) Series(well int) []Point { return append([]Point(nil), t.series[well]...) }

// Len is the number of rows.
func (t *Table) Len() int {
	n := 0
	for _, w := range t.wells {
		n += len(t.series[w])
	}
	return n
}

// Rows flattens the table: wells outer, cycles inner.
func (t *Table) Rows() []Row {
	out := make([]Row, 0, t.Len())
	for _, w := range t.wells {
		for _, p := range t.series[w] {
			out = append(out, Row{Well: w, Cycle: p.Cycle, ROX: p.ROX, FAM: p.FAM})
		}
	}
	return out
}
