package field

import (
	"errors"
	"strconv"
	"testing"
)

func TestList(t *testing.T) {
	got, err := List("DyeList", " [ROX, FAM,SYBR] ")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"ROX", "FAM", "SYBR"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	got, err := List("DyeList", "[]")
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty list, got %v err=%v", got, err)
	}
}

func TestListRejectsUnbracketed(t *testing.T) {
	_, err := List("DyeList", "ROX, FAM")
	if !errors.Is(err, ErrNotList) {
		t.Fatalf("want ErrNotList, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Field != "DyeList" {
		t.Fatalf("want ParseError naming DyeList, got %#v", err)
	}
}

func TestListRejectsEmptyItem(t *testing.T) {
	if _, err := List("DyeList", "[ROX, , FAM]"); !errors.Is(err, ErrMissing) {
		t.Fatalf("want ErrMissing, got %v", err)
	}
}

func TestFloatList(t *testing.T) {
	got, err := FloatList("CycleData", "[1.5, 2, -3e2]")
	if err != nil {
		t.Fatalf("float list: %v", err)
	}
	if len(got) != 3 || got[0] != 1.5 || got[1] != 2 || got[2] != -300 {
		t.Fatalf("unexpected values %v", got)
	}
	_, err = FloatList("CycleData", "[1.5, abc]")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("want syntax error, got %v", err)
	}
}

func TestIntAndCount(t *testing.T) {
	if n, err := Int("WellIndex", " 12 "); err != nil || n != 12 {
		t.Fatalf("want 12, got %d err=%v", n, err)
	}
	if _, err := Int("WellIndex", ""); !errors.Is(err, ErrMissing) {
		t.Fatalf("want ErrMissing, got %v", err)
	}
	if _, err := Count("WellCount", "-1"); !errors.Is(err, ErrNegative) {
		t.Fatalf("want ErrNegative, got %v", err)
	}
	if _, err := Int("WellIndex", "1.0"); err == nil {
		t.Fatalf("expected error for non-integer")
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Float("ROX", "n/a")
	if err == nil || err.Error() != `ROX: cannot parse "n/a": invalid syntax` {
		t.Fatalf("unexpected message: %v", err)
	}
	_, err = Text("Name", "  ")
	if err == nil || err.Error() != "Name: value missing" {
		t.Fatalf("unexpected message: %v", err)
	}
}
