// Package writers turns extracted tables into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON/JSONL, xlsx).
//   • Extractors (eds, amp, targets) stay domain-only; apps stay orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
