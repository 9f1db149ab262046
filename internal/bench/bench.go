package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/wfa"

	"localign/internal/search"
	"localign/internal/seqdb"
)

// Report is one measured run.
type Report struct {
	Name     string
	Targets  int
	Elapsed  time.Duration
	PeakMem  uint64 // bytes; Go heap for in-process runs, RSS for external ones
	BestHits int    // targets sharing the top score (engine) or perfect matches (wfa)
	Best     int    // top score (engine) or most matched bases (wfa)
}

// String renders a one-line summary.
func (r Report) String() string {
	return fmt.Sprintf("%s\ttargets=%s\telapsed=%s\tpeak_mem=%s\tbest=%d\tbest_hits=%d",
		r.Name, humanize.Comma(int64(r.Targets)), r.Elapsed.Round(time.Millisecond),
		humanize.Bytes(r.PeakMem), r.Best, r.BestHits)
}

// WriteReports prints one line per report.
func WriteReports(w io.Writer, reps []Report) error {
	for _, r := range reps {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

// Engine runs the local aligner over recs and records time and peak heap.
func Engine(ctx context.Context, query []byte, recs []seqdb.Record, threads int) (Report, error) {
	rep := Report{Name: "localign", Targets: len(recs)}
	mem := StartMemSampler(0)
	start := time.Now()
	hits, err := search.Search(ctx, search.Engine, query, recs, search.Config{Threads: threads})
	rep.Elapsed = time.Since(start)
	rep.PeakMem = mem.Stop()
	if err != nil {
		return rep, err
	}
	if len(hits) > 0 {
		rep.Best = hits[0].Score
		for _, h := range hits {
			if h.Score != rep.Best {
				break
			}
			rep.BestHits++
		}
	}
	return rep, nil
}

// WFA globally aligns query against every target with the wavefront
// aligner, one target at a time.
func WFA(ctx context.Context, query []byte, recs []seqdb.Record) (Report, error) {
	rep := Report{Name: "wfa", Targets: len(recs)}

	algn := wfa.New(wfa.DefaultPenalties, &wfa.Options{GlobalAlignment: true})
	algn.AdaptiveReduction(wfa.DefaultAdaptiveOption)
	defer wfa.RecycleAligner(algn)

	mem := StartMemSampler(0)
	start := time.Now()
	var err error
	for _, r := range recs {
		if err = ctx.Err(); err != nil {
			break
		}
		if len(r.Seq) == 0 || len(query) == 0 {
			continue
		}
		res, aErr := algn.Align(query, r.Seq)
		if aErr != nil {
			err = errors.Wrapf(aErr, "wfa align %s", r.ID)
			break
		}
		matches := int(res.Matches)
		switch {
		case matches > rep.Best:
			rep.Best, rep.BestHits = matches, 1
		case matches == rep.Best:
			rep.BestHits++
		}
		wfa.RecycleAlignmentResult(res)
	}
	rep.Elapsed = time.Since(start)
	rep.PeakMem = mem.Stop()
	return rep, err
}
