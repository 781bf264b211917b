// Package plate models wells on a rectangular reaction plate: row/column
// labels such as "B7", and the row-major linear index derived from the rows
// and columns actually observed in a file.
package plate

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"multicomponent/internal/field"
)

var (
	ErrNoRow          = errors.New("missing row letter")
	ErrMultiLetterRow = errors.New("multi-letter rows are not supported")
	ErrBadColumn      = errors.New("column must be a number ≥ 1")
	ErrNonContiguous  = errors.New("columns are not contiguous")
)

// IndexCollisionError reports two labels that land on the same linear index.
// It matches ErrNonContiguous under errors.Is.
type IndexCollisionError struct {
	First, Second Label
	Index         int
	Columns       []int
}

func (e *IndexCollisionError) Error() string {
	return fmt.Sprintf("wells %s and %s both map to index %d: columns %v are not contiguous", e.First, e.Second, e.Index, e.Columns)
}

func (e *IndexCollisionError) Unwrap() error { return ErrNonContiguous }

// MissingWellDataError reports a well required for output that has no
// (or incomplete) data. Well is the number as printed in output.
type MissingWellDataError struct {
	Well   int
	Detail string
}

func (e *MissingWellDataError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("missing data for well %d", e.Well)
	}
	return fmt.Sprintf("missing data for well %d: %s", e.Well, e.Detail)
}

// Label is a well address: one row letter and a 1-based column.
type Label struct {
	Row    string
	Column int
}

func (l Label) String() string { return l.Row + strconv.Itoa(l.Column) }

func isLetter(c byte) bool { return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') }

// ParseLabel splits "B12" into row "B" and column 12.
func ParseLabel(s string) (Label, error) {
	v, err := field.Text("well label", s)
	if err != nil {
		return Label{}, err
	}
	i := 0
	for i < len(v) && isLetter(v[i]) {
		i++
	}
	switch {
	case i == 0:
		return Label{}, &field.ParseError{Field: "well label", Value: v, Err: ErrNoRow}
	case i > 1:
		return Label{}, &field.ParseError{Field: "well label", Value: v, Err: ErrMultiLetterRow}
	}
	digits := v[i:]
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return Label{}, &field.ParseError{Field: "well label", Value: v, Err: ErrBadColumn}
		}
	}
	col, err := strconv.Atoi(digits)
	if err != nil || col < 1 {
		return Label{}, &field.ParseError{Field: "well label", Value: v, Err: ErrBadColumn}
	}
	return Label{Row: v[:i], Column: col}, nil
}

// Rectangle maps linear well indices to labels. Rows are ranked by their
// lexicographic order among the observed rows; the index of a label is
// rank*len(columns) + column, so A1 is 1 on every plate.
type Rectangle struct {
	rows    []string
	cols    []int
	indices []int
	labels  map[int]Label
}

// NewRectangle builds the rectangle spanned by the distinct rows and columns
// present in labels. Column sets with gaps can send two labels to the same
// index; that is reported instead of silently dropping a well.
func NewRectangle(labels []Label) (Rectangle, error) {
	rowSet := make(map[string]struct{})
	colSet := make(map[int]struct{})
	for _, l := range labels {
		rowSet[l.Row] = struct{}{}
		colSet[l.Column] = struct{}{}
	}
	r := Rectangle{labels: make(map[int]Label, len(rowSet)*len(colSet))}
	for row := range rowSet {
		r.rows = append(r.rows, row)
	}
	for col := range colSet {
		r.cols = append(r.cols, col)
	}
	sort.Strings(r.rows)
	sort.Ints(r.cols)

	n := len(r.cols)
	for rank, row := range r.rows {
		for _, col := range r.cols {
			idx := rank*n + col
			l := Label{Row: row, Column: col}
			if prev, ok := r.labels[idx]; ok {
				return Rectangle{}, &IndexCollisionError{First: prev, Second: l, Index: idx, Columns: append([]int(nil), r.cols...)}
			}
			r.labels[idx] = l
			r.indices = append(r.indices, idx)
		}
	}
	sort.Ints(r.indices)
	return r, nil
}

// Rows returns the observed rows in rank order.
func (r Rectangle) Rows() []string { return append([]string(nil), r.rows...) }

// Columns returns the observed columns in ascending order.
func (r Rectangle) Columns() []int { return append([]int(nil), r.cols...) }

// Indices returns every linear index of the rectangle in ascending order.
func (r Rectangle) Indices() []int { return append([]int(nil), r.indices...) }

// Label returns the label at a linear index. The zero Label is returned for
// indices outside the rectangle.
func (r Rectangle) Label(idx int) Label { return r.labels[idx] }

// Index returns the linear index of l, or false when l is not on the plate.
func (r Rectangle) Index(l Label) (int, bool) {
	rank := sort.SearchStrings(r.rows, l.Row)
	if rank == len(r.rows) || r.rows[rank] != l.Row {
		return 0, false
	}
	idx := rank*len(r.cols) + l.Column
	if got, ok := r.labels[idx]; !ok || got != l {
		return 0, false
	}
	return idx, true
}
