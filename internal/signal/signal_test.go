package signal

import (
	"errors"
	"testing"

	"multicomponent/internal/plate"
)

func identity(w int) int { return w }

func TestFreezeFixedCycles(t *testing.T) {
	b := NewBuilder[int]()
	for w := 1; w <= 2; w++ {
		for c := 1; c <= 3; c++ {
			b.Set(w, c, Reading{ROX: float64(w), FAM: float64(c)})
		}
	}
	tab, err := Freeze(b, []int{1, 2}, identity, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("freeze: %v", err)
	}
	rows := tab.Rows()
	if len(rows) != 6 || tab.Len() != 6 {
		t.Fatalf("want 6 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.Well != i/3+1 || r.Cycle != i%3+1 {
			t.Fatalf("row %d out of order: %+v", i, r)
		}
	}
}

func TestFreezeObservedCyclesAscending(t *testing.T) {
	b := NewBuilder[string]()
	b.Set("A1", 3, Reading{})
	b.Set("A1", 1, Reading{})
	b.Set("A1", 2, Reading{})
	tab, err := Freeze(b, []int{1}, func(int) string { return "A1" }, nil)
	if err != nil {
		t.Fatalf("freeze: %v", err)
	}
	s := tab.Series(1)
	if len(s) != 3 || s[0].Cycle != 1 || s[2].Cycle != 3 {
		t.Fatalf("cycles not ascending: %+v", s)
	}
}

func TestSetLastWriteWins(t *testing.T) {
	b := NewBuilder[int]()
	b.Set(1, 1, Reading{ROX: 1, FAM: 1})
	b.Set(1, 1, Reading{ROX: 2, FAM: 3})
	tab, err := Freeze(b, []int{1}, identity, []int{1})
	if err != nil {
		t.Fatalf("freeze: %v", err)
	}
	if got := tab.Rows()[0]; got.ROX != 2 || got.FAM != 3 {
		t.Fatalf("want later reading, got %+v", got)
	}
}

func TestFreezeMissingWell(t *testing.T) {
	b := NewBuilder[int]()
	b.Set(1, 1, Reading{})
	_, err := Freeze(b, []int{1, 2}, identity, []int{1})
	var mw *plate.MissingWellDataError
	if !errors.As(err, &mw) || mw.Well != 2 {
		t.Fatalf("want missing well 2, got %v", err)
	}
}

func TestFreezeMissingCycle(t *testing.T) {
	b := NewBuilder[int]()
	b.Set(1, 1, Reading{})
	_, err := Freeze(b, []int{1}, identity, []int{1, 2})
	var mw *plate.MissingWellDataError
	if !errors.As(err, &mw) || mw.Well != 1 {
		t.Fatalf("want missing cycle error, got %v", err)
	}
}

func TestKeysFirstSeenOrder(t *testing.T) {
	b := NewBuilder[string]()
	b.Set("B1", 1, Reading{})
	b.Set("A1", 1, Reading{})
	b.Set("B1", 2, Reading{})
	k := b.Keys()
	if len(k) != 2 || k[0] != "B1" || k[1] != "A1" {
		t.Fatalf("unexpected keys %v", k)
	}
	if !b.Has("A1") || b.Has("C1") {
		t.Fatalf("Has mismatch")
	}
}
