// pkg/api/signal_v1.go
package api

// SignalRowV1 is the stable JSON/JSONL schema for one well/cycle reading.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SignalRowV1 struct {
	Well  int     `json:"well"`
	Cycle int     `json:"cycle"`
	ROX   float64 `json:"rox"`
	FAM   float64 `json:"fam"`
}

// TargetRowV1 is the stable schema for one well's detector assignment.
type TargetRowV1 struct {
	Well   int    `json:"well"`
	Target string `json:"target"`
}
