package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
)

// Sheet names of the workbook outputs.
const (
	SignalSheet = "Multicomponent"
	TargetSheet = "Targets"
)

func writeWorkbook(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	line := 1
	if header != nil {
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		bold, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return err
		}
		end, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(sheet, "A1", end, bold); err != nil {
			return err
		}
		line++
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
		line++
	}
	_ = f.SetDocProps(&excelize.DocProperties{
		Creator:     "multicomponent",
		Description: sheet + " data",
	})
	return f.Write(w)
}

// WriteSignalXLSX writes the rows to a single-sheet workbook. Values are
// stored unrounded.
func WriteSignalXLSX(w io.Writer, rows []signal.Row, header bool) error {
	var hdr []any
	if header {
		hdr = []any{"well", "cycle", "ROX", "FAM"}
	}
	cells := make([][]any, len(rows))
	for i, r := range rows {
		cells[i] = []any{r.Well, r.Cycle, r.ROX, r.FAM}
	}
	return writeWorkbook(w, SignalSheet, hdr, cells)
}

// WriteTargetXLSX writes the assignments to a single-sheet workbook.
func WriteTargetXLSX(w io.Writer, rows []targets.Assignment, header bool) error {
	var hdr []any
	if header {
		hdr = []any{"well", "target"}
	}
	cells := make([][]any, len(rows))
	for i, a := range rows {
		cells[i] = []any{a.Well, a.Target}
	}
	return writeWorkbook(w, TargetSheet, hdr, cells)
}
