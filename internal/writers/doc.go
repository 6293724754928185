// Package writers turns tool reports into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV text, JSON, JSONL, YAML).
//   • Engines stay domain-only; apps only assemble a Report.
//   • JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
