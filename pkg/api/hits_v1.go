// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one ranked corpus record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Score       int           `json:"score"`
	Description string        `json:"description"`
	Alignments  []AlignmentV1 `json:"alignments"`
	ID          string        `json:"id,omitempty"`
	Rank        int           `json:"rank,omitempty"`
}

// AlignmentV1 is one gapped alignment encoded as [query, target].
type AlignmentV1 [2]string

// WindowV1 is a half-open local region, 0-based.
type WindowV1 struct {
	QueryStart  int `json:"query_start"`
	QueryEnd    int `json:"query_end"`
	TargetStart int `json:"target_start"`
	TargetEnd   int `json:"target_end"`
}

// PairV1 is the schema for a single query/target comparison.
type PairV1 struct {
	Score      int           `json:"score"`
	Windows    []WindowV1    `json:"windows"`
	Alignments []AlignmentV1 `json:"alignments"`
}
