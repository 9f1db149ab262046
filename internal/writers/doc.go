// Package writers turns ranked hits into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (pretty blocks, JSON/JSONL/TSV).
//   - search stays domain-only; the app only feeds channels.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
