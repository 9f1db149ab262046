// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"localign-core/align"
	"localign/internal/search"
)

// FormatRowTSV returns the TSV columns for one hit (no trailing newline).
// n_alignments counts windows, which match alignments one to one.
// Tabs and newlines inside the description are flattened to spaces.
func FormatRowTSV(h search.Hit) string {
	desc := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(h.Description)
	return fmt.Sprintf("%d\t%d\t%s\t%d\t%s", h.Rank, h.Score, h.ID, len(h.Windows), desc)
}

// WriteTextWithRenderer prints the TSV rows, each optionally followed by
// the block returned from render (which may be nil).
func WriteTextWithRenderer(w io.Writer, list []search.Hit, header bool, render func(search.Hit) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if err := writeTextRow(w, h, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel. It always
// drains in, even after a write error.
func StreamTextWithRenderer(w io.Writer, in <-chan search.Hit, header bool, render func(search.Hit) string) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for h := range in {
		if err != nil {
			continue
		}
		err = writeTextRow(w, h, render)
	}
	return err
}

func writeTextRow(w io.Writer, h search.Hit, render func(search.Hit) string) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
		return err
	}
	if render == nil {
		return nil
	}
	if block := render(h); block != "" {
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}

// WritePairText prints the score, one line per window and, when render is
// set, its rendering of the alignments.
func WritePairText(w io.Writer, r align.Result, render func(align.Result) string) error {
	if _, err := fmt.Fprintf(w, "score\t%d\n", r.Score); err != nil {
		return err
	}
	for i, win := range r.Windows {
		a := ""
		if i < len(r.Alignments) {
			a = r.Alignments[i].Query + "\t" + r.Alignments[i].Target
		}
		if _, err := fmt.Fprintf(w, "window\t%d\t%d\t%d\t%d\t%s\n",
			win.QueryStart, win.QueryEnd, win.TargetStart, win.TargetEnd, a); err != nil {
			return err
		}
	}
	if render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}
