package writers

import (
	"io"

	"multicomponent/internal/output"
	"multicomponent/internal/targets"
)

func init() {
	RegisterTarget(output.FormatText, output.WriteTargetTSV)
	RegisterTarget(output.FormatJSON, func(w io.Writer, rows []targets.Assignment, _ bool) error {
		return output.WriteTargetJSON(w, rows)
	})
	RegisterTarget(output.FormatJSONL, func(w io.Writer, rows []targets.Assignment, _ bool) error {
		return output.WriteTargetJSONL(w, rows)
	})
	RegisterTarget(output.FormatXLSX, output.WriteTargetXLSX)
}
