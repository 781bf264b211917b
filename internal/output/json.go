// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"multicomponent/internal/jsonlutil"
	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
	"multicomponent/pkg/api"
)

// ToAPISignal converts a table row to the stable wire schema (v1).
func ToAPISignal(r signal.Row) api.SignalRowV1 {
	return api.SignalRowV1{Well: r.Well, Cycle: r.Cycle, ROX: r.ROX, FAM: r.FAM}
}

// ToAPITarget converts an assignment to the stable wire schema (v1).
func ToAPITarget(a targets.Assignment) api.TargetRowV1 {
	return api.TargetRowV1{Well: a.Well, Target: a.Target}
}

func toAPISignals(rows []signal.Row) []api.SignalRowV1 {
	out := make([]api.SignalRowV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPISignal(r))
	}
	return out
}

func toAPITargets(rows []targets.Assignment) []api.TargetRowV1 {
	out := make([]api.TargetRowV1, 0, len(rows))
	for _, a := range rows {
		out = append(out, ToAPITarget(a))
	}
	return out
}

// encodeIndented writes v as one two-space indented JSON document.
func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSignalJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteSignalJSON(w io.Writer, rows []signal.Row) error {
	return encodeIndented(w, toAPISignals(rows))
}

// WriteTargetJSON writes a single JSON array of v1 target rows.
func WriteTargetJSON(w io.Writer, rows []targets.Assignment) error {
	return encodeIndented(w, toAPITargets(rows))
}

// WriteSignalJSONL writes one v1 row per line.
func WriteSignalJSONL(w io.Writer, rows []signal.Row) error {
	return jsonlutil.Write(w, rows, func(enc *json.Encoder, r signal.Row) error {
		return enc.Encode(ToAPISignal(r))
	})
}

// WriteTargetJSONL writes one v1 target row per line.
func WriteTargetJSONL(w io.Writer, rows []targets.Assignment) error {
	return jsonlutil.Write(w, rows, func(enc *json.Encoder, a targets.Assignment) error {
		return enc.Encode(ToAPITarget(a))
	})
}
