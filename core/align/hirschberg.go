package align

import "bytes"

// Hirschberg returns an optimal global alignment of x and y in O(len(x)+len(y))
// working space.
func Hirschberg(x, y []byte) Alignment {
	z := make([]byte, 0, len(x)+len(y))
	w := make([]byte, 0, len(x)+len(y))
	z, w = hirschberg(x, y, z, w)
	return Alignment{Query: string(z), Target: string(w)}
}

// hirschberg appends the alignment of x and y to z and w.
func hirschberg(x, y, z, w []byte) ([]byte, []byte) {
	n, m := len(x), len(y)
	switch {
	case n == 0:
		z = appendGaps(z, m)
		w = append(w, y...)
	case m == 0:
		z = append(z, x...)
		w = appendGaps(w, n)
	case n == 1:
		z = placeSingle(z, x[0], y)
		w = append(w, y...)
	case m == 1:
		z = append(z, x...)
		w = placeSingle(w, y[0], x)
	default:
		j := m / 2
		fwd := nwLastRow(x, y[:j], false)
		bwd := nwLastRow(x, y[j:], true)
		split, best := 0, fwd[0]+bwd[n]
		for i := 1; i <= n; i++ {
			if s := fwd[i] + bwd[n-i]; s > best {
				split, best = i, s
			}
		}
		z, w = hirschberg(x[:split], y[:j], z, w)
		z, w = hirschberg(x[split:], y[j:], z, w)
	}
	return z, w
}

// placeSingle lays symbol c against other: on the first equal symbol if
// there is one, otherwise against other's first symbol as a mismatch.
// Either way the row is len(other) long. Under the fixed scoring both
// placements are optimal for a single symbol.
func placeSingle(dst []byte, c byte, other []byte) []byte {
	p := bytes.IndexByte(other, c)
	if p < 0 {
		p = 0
	}
	dst = appendGaps(dst, p)
	dst = append(dst, c)
	return appendGaps(dst, len(other)-p-1)
}

func appendGaps(dst []byte, k int) []byte {
	for ; k > 0; k-- {
		dst = append(dst, GapChar)
	}
	return dst
}
