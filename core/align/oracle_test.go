package align

// Quadratic-space references used to check the linear-space code.

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// fullGlobal is the textbook Needleman-Wunsch matrix.
func fullGlobal(x, y []byte) [][]int {
	n, m := len(x), len(y)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i * GapScore
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j * GapScore
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			d[i][j] = max3(
				d[i-1][j]+GapScore,
				d[i][j-1]+GapScore,
				d[i-1][j-1]+Delta(x[i-1], y[j-1]),
			)
		}
	}
	return d
}

func bruteGlobalScore(x, y []byte) int {
	return fullGlobal(x, y)[len(x)][len(y)]
}

// bruteLocalMax is the textbook Smith-Waterman matrix maximum.
func bruteLocalMax(v, w []byte) int {
	n, m := len(v), len(w)
	h := make([][]int, n+1)
	for i := range h {
		h[i] = make([]int, m+1)
	}
	best := 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			s := max3(0, h[i-1][j]+GapScore, h[i][j-1]+GapScore)
			if d := h[i-1][j-1] + Delta(v[i-1], w[j-1]); d > s {
				s = d
			}
			h[i][j] = s
			if s > best {
				best = s
			}
		}
	}
	return best
}

// bruteWindows keeps the whole origin-tracking matrix and applies the same
// transition order and tie rules as FindWindows.
func bruteWindows(v, w []byte) (int, []Window) {
	n, m := len(v), len(w)
	grid := make([][]cell, m+1)
	for j := range grid {
		grid[j] = make([]cell, n+1)
	}
	best := 0
	var out []Window
	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			c := cell{0, i, j}
			if i > 0 && grid[j][i-1].score-1 > c.score {
				p := grid[j][i-1]
				c = cell{p.score - 1, p.qBegin, p.tBegin}
			}
			if j > 0 && grid[j-1][i].score-1 > c.score {
				p := grid[j-1][i]
				c = cell{p.score - 1, p.qBegin, p.tBegin}
			}
			if i > 0 && j > 0 {
				p := grid[j-1][i-1]
				if s := p.score + Delta(v[i-1], w[j-1]); s > c.score {
					c = cell{s, p.qBegin, p.tBegin}
				}
			}
			grid[j][i] = c
			if c.score > best {
				best = c.score
				out = []Window{{c.qBegin, c.tBegin, i, j}}
			} else if c.score == best && best > 0 {
				out = append(out, Window{c.qBegin, c.tBegin, i, j})
			}
		}
	}
	return best, out
}

// allStrings enumerates every string over alphabet of length 0..maxLen.
func allStrings(alphabet string, maxLen int) [][]byte {
	out := [][]byte{{}}
	layer := [][]byte{{}}
	for l := 1; l <= maxLen; l++ {
		var next [][]byte
		for _, s := range layer {
			for k := 0; k < len(alphabet); k++ {
				t := append(append([]byte(nil), s...), alphabet[k])
				next = append(next, t)
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
