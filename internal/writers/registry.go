// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"multicomponent/internal/signal"
	"multicomponent/internal/targets"
)

type (
	SignalWriter func(w io.Writer, rows []signal.Row, header bool) error
	TargetWriter func(w io.Writer, rows []targets.Assignment, header bool) error
)

// Writer registries (format → handler).
// Register in init() blocks from the signal/target writer files.
var (
	SignalWriters = map[string]SignalWriter{}
	TargetWriters = map[string]TargetWriter{}
)

// Register helpers (idempotent last-wins)
func RegisterSignal(format string, fn SignalWriter) { SignalWriters[format] = fn }
func RegisterTarget(format string, fn TargetWriter) { TargetWriters[format] = fn }

// Dispatch helpers used by the apps.
func WriteSignal(format string, w io.Writer, rows []signal.Row, header bool) error {
	fn, ok := SignalWriters[format]
	if !ok {
		return fmt.Errorf("unknown signal format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}

func WriteTarget(format string, w io.Writer, rows []targets.Assignment, header bool) error {
	fn, ok := TargetWriters[format]
	if !ok {
		return fmt.Errorf("unknown target format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}
