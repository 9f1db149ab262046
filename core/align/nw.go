package align

// GlobalScores returns, for every prefix length i of x (0..len(x)), the
// optimal global alignment score of x[:i] against all of y. Only two rows of
// len(x)+1 are ever held.
func GlobalScores(x, y []byte) []int {
	return nwLastRow(x, y, false)
}

// nwLastRow is GlobalScores over x and y, or over their reversals when
// reverse is set, without materializing the reversed copies.
func nwLastRow(x, y []byte, reverse bool) []int {
	n, m := len(x), len(y)
	xAt := func(i int) byte { return x[i-1] }
	yAt := func(j int) byte { return y[j-1] }
	if reverse {
		xAt = func(i int) byte { return x[n-i] }
		yAt = func(j int) byte { return y[m-j] }
	}

	prev := make([]int, n+1)
	cur := make([]int, n+1)

	// column j=0: x prefixes against the empty y
	for i := 1; i <= n; i++ {
		prev[i] = prev[i-1] + GapScore
	}

	for j := 1; j <= m; j++ {
		yj := yAt(j)
		cur[0] = prev[0] + GapScore
		for i := 1; i <= n; i++ {
			best := cur[i-1] + GapScore
			if s := prev[i] + GapScore; s > best {
				best = s
			}
			if s := prev[i-1] + Delta(xAt(i), yj); s > best {
				best = s
			}
			cur[i] = best
		}
		prev, cur = cur, prev
	}
	return prev
}
