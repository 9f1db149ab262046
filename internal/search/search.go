package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"localign-core/align"
	"localign/internal/seqdb"
)

// Aligner is the minimal capability Search needs. Any engine (including
// fakes in tests) can satisfy it.
type Aligner interface {
	Align(query, target []byte) align.Result
}

// AlignerFunc adapts a plain function to Aligner.
type AlignerFunc func(query, target []byte) align.Result

func (f AlignerFunc) Align(query, target []byte) align.Result { return f(query, target) }

// Engine is the linear-space local aligner.
var Engine Aligner = AlignerFunc(align.Local)

// WindowsOnly scores and locates windows but skips the Hirschberg pass.
// Use it when alignment strings are never printed.
var WindowsOnly Aligner = AlignerFunc(func(query, target []byte) align.Result {
	score, wins := align.FindWindows(query, target)
	return align.Result{Score: score, Windows: wins}
})

// Config controls a corpus search.
type Config struct {
	Threads  int // worker goroutines (>=1)
	TopN     int // keep the N best hits; 0 keeps all
	MinScore int // drop hits scoring below this

	// OnTarget, if set, is called once per finished target with the time
	// the comparison took. It runs on worker goroutines.
	OnTarget func(time.Duration)
}

// Hit is the result for one corpus record.
type Hit struct {
	Index       int // position in the corpus
	Rank        int // 1-based position after ranking; 0 until ranked
	ID          string
	Description string
	Score       int
	Windows     []align.Window
	Alignments  []align.Alignment
}

// Search compares query against every record and returns the ranked hits.
// It returns ctx.Err() if the context is canceled before all targets finish.
func Search(ctx context.Context, eng Aligner, query []byte, recs []seqdb.Record, cfg Config) ([]Hit, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if eng == nil {
		eng = Engine
	}

	hits := make([]Hit, len(recs))
	jobs := make(chan int, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					start := time.Now()
					r := eng.Align(query, recs[i].Seq)
					// each worker owns a distinct index
					hits[i] = Hit{
						Index:       i,
						ID:          recs[i].ID,
						Description: recs[i].Description,
						Score:       r.Score,
						Windows:     r.Windows,
						Alignments:  r.Alignments,
					}
					if cfg.OnTarget != nil {
						cfg.OnTarget(time.Since(start))
					}
				}
			}
		}()
	}

feed:
	for i := range recs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Rank(hits, cfg.TopN, cfg.MinScore), nil
}

// Rank filters hits below minScore, orders the rest by score descending with
// ties in corpus order, truncates to topN (0 = no limit) and assigns Rank.
func Rank(hits []Hit, topN, minScore int) []Hit {
	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if h.Score >= minScore {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return LessHit(out[i], out[j]) })
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// LessHit defines the result order: higher score first, then corpus order.
func LessHit(a, b Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Index < b.Index
}
