package plate

import (
	"errors"
	"testing"

	"multicomponent/internal/field"
)

func mustLabel(t *testing.T, s string) Label {
	t.Helper()
	l, err := ParseLabel(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return l
}

func TestParseLabel(t *testing.T) {
	l := mustLabel(t, " H12 ")
	if l.Row != "H" || l.Column != 12 || l.String() != "H12" {
		t.Fatalf("unexpected label %+v", l)
	}
}

func TestParseLabelErrors(t *testing.T) {
	cases := map[string]error{
		"12":  ErrNoRow,
		"AA1": ErrMultiLetterRow,
		"A":   ErrBadColumn,
		"A0":  ErrBadColumn,
		"A1x": ErrBadColumn,
		"A-1": ErrBadColumn,
		"":    field.ErrMissing,
	}
	for in, want := range cases {
		_, err := ParseLabel(in)
		if !errors.Is(err, want) {
			t.Errorf("%q: want %v, got %v", in, want, err)
		}
		var pe *field.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: want ParseError, got %T", in, err)
		}
	}
}

func TestRectangleIndices(t *testing.T) {
	var labels []Label
	for _, s := range []string{"B2", "A1", "B1", "A2", "A1"} {
		labels = append(labels, mustLabel(t, s))
	}
	r, err := NewRectangle(labels)
	if err != nil {
		t.Fatalf("rectangle: %v", err)
	}
	want := map[string]int{"A1": 1, "A2": 2, "B1": 3, "B2": 4}
	for s, idx := range want {
		got, ok := r.Index(mustLabel(t, s))
		if !ok || got != idx {
			t.Errorf("%s: want %d, got %d (ok=%v)", s, idx, got, ok)
		}
		if r.Label(idx).String() != s {
			t.Errorf("index %d: want %s, got %s", idx, s, r.Label(idx))
		}
	}
	idx := r.Indices()
	if len(idx) != 4 || idx[0] != 1 || idx[3] != 4 {
		t.Fatalf("unexpected indices %v", idx)
	}
}

func TestRectangleSortsColumnsNumerically(t *testing.T) {
	var labels []Label
	for _, s := range []string{"A10", "A9", "A11"} {
		labels = append(labels, mustLabel(t, s))
	}
	r, err := NewRectangle(labels)
	if err != nil {
		t.Fatalf("rectangle: %v", err)
	}
	cols := r.Columns()
	if cols[0] != 9 || cols[1] != 10 || cols[2] != 11 {
		t.Fatalf("columns not numeric order: %v", cols)
	}
}

func TestRectangleIncludesUnobservedCombinations(t *testing.T) {
	// A1, A2 and B1 observed: B2 is implied by the rectangle.
	var labels []Label
	for _, s := range []string{"A1", "A2", "B1"} {
		labels = append(labels, mustLabel(t, s))
	}
	r, err := NewRectangle(labels)
	if err != nil {
		t.Fatalf("rectangle: %v", err)
	}
	if got := r.Label(4); got.String() != "B2" {
		t.Fatalf("want implied B2 at index 4, got %v", got)
	}
}

func TestRectangleCollision(t *testing.T) {
	var labels []Label
	for _, s := range []string{"A1", "A2", "A4", "B1", "B2", "B4"} {
		labels = append(labels, mustLabel(t, s))
	}
	_, err := NewRectangle(labels)
	if !errors.Is(err, ErrNonContiguous) {
		t.Fatalf("want ErrNonContiguous, got %v", err)
	}
	var ce *IndexCollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("want *IndexCollisionError, got %T", err)
	}
	if ce.Index != 4 || ce.First.String() != "A4" || ce.Second.String() != "B1" {
		t.Fatalf("unexpected collision %+v", ce)
	}
}

func TestMissingWellDataMessage(t *testing.T) {
	err := &MissingWellDataError{Well: 7}
	if err.Error() != "missing data for well 7" {
		t.Fatalf("unexpected %q", err.Error())
	}
}
