package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatXLSX  = "xlsx"
)

// Formats lists every format in help-text order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatXLSX}

// SignalHeader is the header row of the signal TSV.
// Keep this as the single source of truth; all writers should use it.
const SignalHeader = "well\tcycle\tROX\tFAM"

// TargetHeader is the header row of the target TSV.
const TargetHeader = "well\ttarget"
