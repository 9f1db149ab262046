package align

// Window is a half-open rectangle [QueryStart,QueryEnd) x [TargetStart,TargetEnd)
// covering one best-scoring local region.
type Window struct {
	QueryStart  int
	TargetStart int
	QueryEnd    int
	TargetEnd   int
}

// cell is the best score of a run ending at one matrix position and the
// position where that run began.
type cell struct {
	score  int
	qBegin int
	tBegin int
}

// FindWindows scans v (query) against w (target) for the best local score and
// returns every window that reaches it, in scan order (target-major, then
// query). Ties are all kept, overlapping or not. A best score of 0 yields no
// windows.
//
// Only two rows of len(v)+1 cells are held; each cell carries the origin of
// its run instead of a traceback pointer.
func FindWindows(v, w []byte) (int, []Window) {
	n, m := len(v), len(w)
	prev := make([]cell, n+1)
	cur := make([]cell, n+1)

	best := 0
	var windows []Window

	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			c := cell{score: 0, qBegin: i, tBegin: j}
			// deletion, insertion, diagonal; later ones win only on strict gain
			if i > 0 {
				if s := cur[i-1].score + GapScore; s > c.score {
					c = cell{score: s, qBegin: cur[i-1].qBegin, tBegin: cur[i-1].tBegin}
				}
			}
			if j > 0 {
				if s := prev[i].score + GapScore; s > c.score {
					c = cell{score: s, qBegin: prev[i].qBegin, tBegin: prev[i].tBegin}
				}
			}
			if i > 0 && j > 0 {
				if s := prev[i-1].score + Delta(v[i-1], w[j-1]); s > c.score {
					c = cell{score: s, qBegin: prev[i-1].qBegin, tBegin: prev[i-1].tBegin}
				}
			}
			cur[i] = c

			switch {
			case c.score > best:
				best = c.score
				windows = append(windows[:0], Window{c.qBegin, c.tBegin, i, j})
			case c.score == best && best > 0:
				windows = append(windows, Window{c.qBegin, c.tBegin, i, j})
			}
		}
		prev, cur = cur, prev
	}
	return best, windows
}
