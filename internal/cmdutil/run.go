package cmdutil

import (
	"context"
	"io"

	"localign/internal/pretty"
	"localign/internal/search"
	"localign/internal/writers"
)

// WriteHits streams ranked hits through the writer registered for format.
// It stops feeding when ctx is canceled and returns the writer's error,
// or ctx.Err() if nothing else went wrong.
func WriteHits(ctx context.Context, out io.Writer, format string, header, prettyMode bool, popt pretty.Options, hits []search.Hit) error {
	in, done := writers.StartHitWriterWithPrettyOptions(out, format, header, prettyMode, popt, 64)
feed:
	for _, h := range hits {
		select {
		case <-ctx.Done():
			break feed
		case in <- h:
		}
	}
	close(in)
	if err := <-done; err != nil {
		return err
	}
	return ctx.Err()
}
