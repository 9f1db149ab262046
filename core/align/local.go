package align

// Result is the outcome of one query/target comparison.
type Result struct {
	Score      int
	Windows    []Window
	Alignments []Alignment // one per window, same order
}

// Local finds the best local score of query against target and aligns every
// window that reaches it.
func Local(query, target []byte) Result {
	score, windows := FindWindows(query, target)
	res := Result{Score: score, Windows: windows}
	if len(windows) == 0 {
		return res
	}
	res.Alignments = make([]Alignment, 0, len(windows))
	for _, win := range windows {
		res.Alignments = append(res.Alignments, Hirschberg(
			query[win.QueryStart:win.QueryEnd],
			target[win.TargetStart:win.TargetEnd],
		))
	}
	return res
}

// FindLocalAlignment returns the best local score and one alignment per
// window achieving it.
func FindLocalAlignment(query, target []byte) (int, []Alignment) {
	r := Local(query, target)
	return r.Score, r.Alignments
}
