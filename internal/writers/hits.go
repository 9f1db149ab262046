// internal/writers/hits.go
package writers

import (
	"io"

	"localign/internal/output"
	"localign/internal/pretty"
	"localign/internal/search"
)

type hitArgs struct {
	Header bool
	Pretty bool
	Opt    pretty.Options
	In     <-chan search.Hit
}

func drainHits(ch <-chan search.Hit) []search.Hit {
	list := make([]search.Hit, 0, 64)
	for h := range ch {
		list = append(list, h)
	}
	return list
}

func init() {
	// JSON array
	RegisterHit(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(hitArgs)
		return output.WriteJSON(w, drainHits(args.In))
	})

	// JSONL streaming
	RegisterHit(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(hitArgs)
		pipe, done := StartHitJSONLWriter(w, 64)
		for h := range args.In {
			pipe <- h
		}
		close(pipe)
		return <-done
	})

	// TSV (+ optional pretty blocks)
	RegisterHit(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(hitArgs)
		var render func(search.Hit) string
		if args.Pretty {
			render = func(h search.Hit) string {
				return pretty.RenderAll(h.Score, h.Windows, h.Alignments, args.Opt)
			}
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, render)
	})
}

// StartHitWriter spins up a writer goroutine for ranked hits. Send hits in
// rank order, close the channel, then read exactly one error.
func StartHitWriter(out io.Writer, format string, header, prettyMode bool, bufSize int) (chan<- search.Hit, <-chan error) {
	return StartHitWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartHitWriterWithPrettyOptions allows customizing the pretty renderer.
func StartHitWriterWithPrettyOptions(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- search.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan search.Hit, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteHits(format, out, hitArgs{
			Header: header,
			Pretty: prettyMode,
			Opt:    popt,
			In:     in,
		})
		if err != nil {
			// keep senders from blocking when dispatch failed early
			for range in {
			}
		}
		errCh <- quietPipe(err)
	}()
	return in, errCh
}
