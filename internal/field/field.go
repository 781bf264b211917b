// Package field converts raw document text (XML character data, attribute
// values, delimited columns) into typed values.
//
// Every conversion failure is reported as a *ParseError that names the field
// it came from, so callers never see a bare strconv error.
package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissing marks an absent or blank value where one is required.
	ErrMissing = errors.New("value missing")
	// ErrNotList marks list text that is not wrapped in square brackets.
	ErrNotList = errors.New("expected a bracketed list like [a, b]")
	// ErrNegative marks a count that is below zero.
	ErrNegative = errors.New("must be ≥ 0")
)

// ParseError reports a value that could not be converted.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMissing) {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func fail(name, value string, err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return &ParseError{Field: name, Value: value, Err: err}
}

// First returns the first of repeated element values, or "" when there are none.
func First(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Text returns s trimmed, failing when nothing is left.
func Text(name, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fail(name, s, ErrMissing)
	}
	return v, nil
}

// Int parses a base-10 integer.
func Int(name, s string) (int, error) {
	v, err := Text(name, s)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fail(name, v, err)
	}
	return n, nil
}

// Count parses a non-negative integer (well counts, cycle counts, plate dimensions).
func Count(name, s string) (int, error) {
	n, err := Int(name, s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fail(name, strings.TrimSpace(s), ErrNegative)
	}
	return n, nil
}

// Float parses a 64-bit float.
func Float(name, s string) (float64, error) {
	v, err := Text(name, s)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fail(name, v, err)
	}
	return f, nil
}

// List splits bracketed, comma-separated text such as "[ROX, FAM]".
// Items are trimmed; "[]" yields an empty list; an empty item is an error.
func List(name, s string) ([]string, error) {
	v, err := Text(name, s)
	if err != nil {
		return nil, err
	}
	if len(v) < 2 || v[0] != '[' || v[len(v)-1] != ']' {
		return nil, fail(name, v, ErrNotList)
	}
	inner := strings.TrimSpace(v[1 : len(v)-1])
	if inner == "" {
		return []string{}, nil
	}
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fail(fmt.Sprintf("%s item %d", name, i+1), v, ErrMissing)
		}
		parts[i] = p
	}
	return parts, nil
}

// FloatList is List followed by Float on every item.
func FloatList(name, s string) ([]float64, error) {
	items, err := List(name, s)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, it := range items {
		f, err := Float(fmt.Sprintf("%s item %d", name, i+1), it)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
