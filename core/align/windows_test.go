package align

import (
	"reflect"
	"testing"
)

func TestFindWindows_IdenticalRuns(t *testing.T) {
	score, wins := FindWindows([]byte("AAAA"), []byte("AAAA"))
	if score != 4 {
		t.Fatalf("want score 4, got %d", score)
	}
	want := []Window{{0, 0, 4, 4}}
	if !reflect.DeepEqual(wins, want) {
		t.Fatalf("want %v, got %v", want, wins)
	}
}

func TestFindWindows_NoSharedSymbol(t *testing.T) {
	score, wins := FindWindows([]byte("AAA"), []byte("CCC"))
	if score != 0 || len(wins) != 0 {
		t.Fatalf("want (0, []), got (%d, %v)", score, wins)
	}
}

func TestFindWindows_EmptyInput(t *testing.T) {
	if s, w := FindWindows(nil, []byte("ACGT")); s != 0 || len(w) != 0 {
		t.Fatalf("empty query: got (%d, %v)", s, w)
	}
	if s, w := FindWindows([]byte("ACGT"), nil); s != 0 || len(w) != 0 {
		t.Fatalf("empty target: got (%d, %v)", s, w)
	}
}

// Tied windows that share target positions are all kept, in scan order.
func TestFindWindows_TiesKeptUnmerged(t *testing.T) {
	score, wins := FindWindows([]byte("AAA"), []byte("A"))
	if score != 1 {
		t.Fatalf("want score 1, got %d", score)
	}
	want := []Window{{0, 0, 1, 1}, {1, 0, 2, 1}, {2, 0, 3, 1}}
	if !reflect.DeepEqual(wins, want) {
		t.Fatalf("want %v, got %v", want, wins)
	}
}

func TestFindWindows_TiesAcrossTarget(t *testing.T) {
	score, wins := FindWindows([]byte("ACA"), []byte("A"))
	if score != 1 {
		t.Fatalf("want score 1, got %d", score)
	}
	want := []Window{{0, 0, 1, 1}, {2, 0, 3, 1}}
	if !reflect.DeepEqual(wins, want) {
		t.Fatalf("want %v, got %v", want, wins)
	}
}

// A later strictly better cell replaces all earlier ties.
func TestFindWindows_BetterScoreResetsList(t *testing.T) {
	score, wins := FindWindows([]byte("AA"), []byte("AA"))
	if score != 2 {
		t.Fatalf("want score 2, got %d", score)
	}
	want := []Window{{0, 0, 2, 2}}
	if !reflect.DeepEqual(wins, want) {
		t.Fatalf("want %v, got %v", want, wins)
	}
}

func TestFindWindows_MatchesQuadraticReference(t *testing.T) {
	pairs := [][2]string{
		{"ACGTACGT", "ACGTTTGT"},
		{"GATTACA", "TACATTAG"},
		{"TTTACGACGTAAA", "ACGACG"},
	}
	for _, p := range pairs {
		v, w := []byte(p[0]), []byte(p[1])
		gotS, gotW := FindWindows(v, w)
		wantS, wantW := bruteWindows(v, w)
		if gotS != wantS || !reflect.DeepEqual(gotW, wantW) {
			t.Fatalf("%s vs %s: want (%d, %v), got (%d, %v)", v, w, wantS, wantW, gotS, gotW)
		}
		if gotS != bruteLocalMax(v, w) {
			t.Fatalf("%s vs %s: score %d, Smith-Waterman max %d", v, w, gotS, bruteLocalMax(v, w))
		}
	}
}

func TestFindWindows_Exhaustive(t *testing.T) {
	seqs := allStrings("ACG", 4)
	for _, v := range seqs {
		for _, w := range seqs {
			gotS, gotW := FindWindows(v, w)
			if want := bruteLocalMax(v, w); gotS != want {
				t.Fatalf("%q vs %q: score %d, Smith-Waterman max %d", v, w, gotS, want)
			}
			wantS, wantW := bruteWindows(v, w)
			if gotS != wantS || len(gotW) != len(wantW) {
				t.Fatalf("%q vs %q: want (%d, %v), got (%d, %v)", v, w, wantS, wantW, gotS, gotW)
			}
			for k := range gotW {
				if gotW[k] != wantW[k] {
					t.Fatalf("%q vs %q: window %d want %v, got %v", v, w, k, wantW[k], gotW[k])
				}
			}
		}
	}
}
