package align

import "strings"

// Alignment is one global alignment of two sequences. Both sides have the
// same length; GapChar marks a position with no symbol.
type Alignment struct {
	Query  string
	Target string
}

// Len is the number of alignment columns.
func (a Alignment) Len() int { return len(a.Query) }

// Score sums Delta over aligned columns and GapScore over gapped ones.
func (a Alignment) Score() int {
	s := 0
	for i := 0; i < len(a.Query) && i < len(a.Target); i++ {
		q, t := a.Query[i], a.Target[i]
		switch {
		case q == GapChar && t == GapChar:
		case q == GapChar || t == GapChar:
			s += GapScore
		default:
			s += Delta(q, t)
		}
	}
	return s
}

// Stats counts matched, mismatched and gapped columns.
func (a Alignment) Stats() (matches, mismatches, gaps int) {
	for i := 0; i < len(a.Query) && i < len(a.Target); i++ {
		q, t := a.Query[i], a.Target[i]
		switch {
		case q == GapChar || t == GapChar:
			gaps++
		case q == t:
			matches++
		default:
			mismatches++
		}
	}
	return matches, mismatches, gaps
}

// Ungap removes gap markers.
func Ungap(s string) string {
	return strings.ReplaceAll(s, string(GapChar), "")
}
