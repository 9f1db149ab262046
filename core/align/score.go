package align

// GapChar fills positions of an alignment that have no symbol.
const GapChar = '-'

const (
	MatchScore    = 1
	MismatchScore = -1
	GapScore      = -1
)

// Delta scores one aligned symbol pair.
func Delta(a, b byte) int {
	if a == b {
		return MatchScore
	}
	return MismatchScore
}
