package seqdb

import "strings"

// Record is one corpus entry.
type Record struct {
	ID          string // first token of Description
	Description string
	Seq         []byte
}

// IDFromDescription returns the first whitespace-delimited token.
func IDFromDescription(desc string) string {
	f := strings.Fields(desc)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
