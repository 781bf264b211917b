// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
)

// FormatSignalRowTSV returns one data line (no trailing newline); values
// carry two decimals.
func FormatSignalRowTSV(r signal.Row) string {
	return fmt.Sprintf("%d\t%d\t%.2f\t%.2f", r.Well, r.Cycle, r.ROX, r.FAM)
}

// WriteSignalTSV prints one line per well/cycle.
func WriteSignalTSV(w io.Writer, rows []signal.Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SignalHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, FormatSignalRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTargetTSV prints one line per well.
func WriteTargetTSV(w io.Writer, rows []targets.Assignment, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TargetHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.Well, r.Target); err != nil {
			return err
		}
	}
	return nil
}
