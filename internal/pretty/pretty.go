package pretty

import (
	"fmt"
	"strings"

	"localign-core/align"
)

// Options control the ASCII rendering.
type Options struct {
	// Alignment columns per block. If <=0, use default (60).
	Width int

	// Glyphs for the marker row.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "

	// Prefix for every emitted line, so blocks read as comments inside TSV.
	Prefix string
}

// DefaultOptions is what --pretty uses.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
	Prefix:        "# ",
}

const (
	queryLabel  = "Query "
	targetLabel = "Target"
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

// Markers returns the marker row for a gapped pair.
func Markers(a align.Alignment, opt Options) string {
	opt = opt.withDefaults()
	var b strings.Builder
	for i := 0; i < a.Len(); i++ {
		q, t := a.Query[i], a.Target[i]
		switch {
		case q == align.GapChar || t == align.GapChar:
			b.WriteString(opt.GapGlyph)
		case q == t:
			b.WriteString(opt.MatchGlyph)
		default:
			b.WriteString(opt.MismatchGlyph)
		}
	}
	return b.String()
}

func residues(s string) int {
	return len(s) - strings.Count(s, string(align.GapChar))
}

// RenderAlignment draws one alignment in blocks of opt.Width columns.
// win anchors the coordinates, which are printed 1-based and inclusive.
func RenderAlignment(a align.Alignment, win align.Window, opt Options) string {
	opt = opt.withDefaults()
	if a.Len() == 0 {
		return ""
	}
	marks := Markers(a, opt)

	digits := len(fmt.Sprint(win.QueryEnd))
	if d := len(fmt.Sprint(win.TargetEnd)); d > digits {
		digits = d
	}
	pad := strings.Repeat(" ", len(queryLabel)+1+digits+1)

	var b strings.Builder
	qPos, tPos := win.QueryStart, win.TargetStart
	for s := 0; s < a.Len(); s += opt.Width {
		e := s + opt.Width
		if e > a.Len() {
			e = a.Len()
		}
		q, t := a.Query[s:e], a.Target[s:e]
		qEnd, tEnd := qPos+residues(q), tPos+residues(t)

		if s > 0 {
			b.WriteString(opt.Prefix + "\n")
		}
		fmt.Fprintf(&b, "%s%s %*d %s %d\n", opt.Prefix, queryLabel, digits, qPos+1, q, qEnd)
		fmt.Fprintf(&b, "%s%s%s\n", opt.Prefix, pad, marks[s:e])
		fmt.Fprintf(&b, "%s%s %*d %s %d\n", opt.Prefix, targetLabel, digits, tPos+1, t, tEnd)

		qPos, tPos = qEnd, tEnd
	}
	return b.String()
}

// RenderAll draws every alignment of a result under a short header line.
// windows and alns are parallel.
func RenderAll(score int, windows []align.Window, alns []align.Alignment, opt Options) string {
	opt = opt.withDefaults()
	var b strings.Builder
	for i, a := range alns {
		var win align.Window
		if i < len(windows) {
			win = windows[i]
		}
		m, mm, g := a.Stats()
		fmt.Fprintf(&b, "%salignment %d/%d score=%d matches=%d mismatches=%d gaps=%d\n",
			opt.Prefix, i+1, len(alns), score, m, mm, g)
		b.WriteString(RenderAlignment(a, win, opt))
		b.WriteString(opt.Prefix + "\n")
	}
	return b.String()
}
