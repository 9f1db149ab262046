// internal/output/json.go
package output

import (
	"io"

	"localign-core/align"
	"localign/internal/jsonutil"
	"localign/internal/search"
	"localign/pkg/api"
)

func toAPIAlignments(list []align.Alignment) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, a := range list {
		out = append(out, api.AlignmentV1{a.Query, a.Target})
	}
	return out
}

func toAPIWindows(list []align.Window) []api.WindowV1 {
	out := make([]api.WindowV1, 0, len(list))
	for _, w := range list {
		out = append(out, api.WindowV1{
			QueryStart:  w.QueryStart,
			QueryEnd:    w.QueryEnd,
			TargetStart: w.TargetStart,
			TargetEnd:   w.TargetEnd,
		})
	}
	return out
}

// ToAPIHit converts a ranked hit to the stable wire schema (v1).
// Alignments is never nil so a zero-score hit still encodes "alignments": [].
func ToAPIHit(h search.Hit) api.HitV1 {
	return api.HitV1{
		Score:       h.Score,
		Description: h.Description,
		Alignments:  toAPIAlignments(h.Alignments),
		ID:          h.ID,
		Rank:        h.Rank,
	}
}

func toAPIHits(list []search.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []search.Hit) error {
	return jsonutil.EncodePretty(w, toAPIHits(list))
}

// ToAPIPair converts a single comparison to the v1 schema.
func ToAPIPair(r align.Result) api.PairV1 {
	return api.PairV1{
		Score:      r.Score,
		Windows:    toAPIWindows(r.Windows),
		Alignments: toAPIAlignments(r.Alignments),
	}
}

// WritePairJSON writes one comparison as an indented JSON object.
func WritePairJSON(w io.Writer, r align.Result) error {
	return jsonutil.EncodePretty(w, ToAPIPair(r))
}
