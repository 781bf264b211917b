package writers

import (
	"io"

	"multicomponent/internal/output"
	"multicomponent/internal/signal"
)

func init() {
	RegisterSignal(output.FormatText, output.WriteSignalTSV)
	RegisterSignal(output.FormatJSON, func(w io.Writer, rows []signal.Row, _ bool) error {
		return output.WriteSignalJSON(w, rows)
	})
	RegisterSignal(output.FormatJSONL, func(w io.Writer, rows []signal.Row, _ bool) error {
		return output.WriteSignalJSONL(w, rows)
	})
	RegisterSignal(output.FormatXLSX, output.WriteSignalXLSX)
}
