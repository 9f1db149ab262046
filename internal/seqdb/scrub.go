package seqdb

import (
	"bytes"
	"strings"

	"github.com/zeebo/wyhash"
)

// DefaultKeywords select complete viral records.
var DefaultKeywords = []string{"complete sequence", "complete genome"}

// Scrub keeps records with a non-empty sequence whose description contains
// any of keywords. An empty keyword list keeps every non-empty record.
func Scrub(recs []Record, keywords []string) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.Description == "" || len(r.Seq) == 0 {
			continue
		}
		if len(keywords) > 0 && !containsAny(r.Description, keywords) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, k := range subs {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Dedup drops records whose sequence equals an earlier record's, keeping
// first-seen order. It returns the kept records and the number dropped.
func Dedup(recs []Record) ([]Record, int) {
	seen := make(map[uint64][]int, len(recs))
	out := make([]Record, 0, len(recs))
	dropped := 0
next:
	for _, r := range recs {
		h := wyhash.HashString(string(r.Seq), 0)
		for _, k := range seen[h] {
			if bytes.Equal(out[k].Seq, r.Seq) {
				dropped++
				continue next
			}
		}
		seen[h] = append(seen[h], len(out))
		out = append(out, r)
	}
	return out, dropped
}
