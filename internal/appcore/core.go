// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"localign/internal/bench"
	"localign/internal/cli"
	"localign/internal/cliutil"
	"localign/internal/cmdutil"
	"localign/internal/pretty"
	"localign/internal/progress"
	"localign/internal/runutil"
	"localign/internal/search"
	"localign/internal/seqdb"
	"localign/internal/writers"
)

// LoadQuery resolves --query/--query-file to a sequence.
func LoadQuery(inline, file string) ([]byte, error) {
	return cliutil.ResolveQuery(inline, file, func(path string) ([][]byte, error) {
		recs, err := seqdb.Load(path)
		if err != nil {
			return nil, err
		}
		seqs := make([][]byte, len(recs))
		for i, r := range recs {
			seqs[i] = r.Seq
		}
		return seqs, nil
	})
}

// LoadCorpus expands globs and loads every corpus file in order.
func LoadCorpus(paths []string) ([]seqdb.Record, error) {
	files, err := cliutil.ExpandPositionals(paths)
	if err != nil {
		return nil, err
	}
	return seqdb.LoadAll(files)
}

// RunSearch executes `search` and returns the process exit code.
func RunSearch(parent context.Context, stdout, stderr io.Writer, o cli.SearchOptions) int {
	start := time.Now()
	var mem *bench.MemSampler
	if o.Verbose {
		mem = bench.StartMemSampler(0)
	}

	query, err := LoadQuery(o.Query, o.QueryFile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	recs, err := LoadCorpus(o.DBs)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if len(recs) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "corpus is empty")
	}
	if len(query) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "query is empty; every target scores 0")
	}
	thr := runutil.EffectiveThreads(o.Threads, len(recs))
	cmdutil.Infof(stderr, o.Verbose, "loaded %s records; query length %s; %d threads",
		humanize.Comma(int64(len(recs))), humanize.Comma(int64(len(query))), thr)

	var dst io.Writer = stdout
	if o.Out != "" {
		f, err := os.Create(o.Out)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 3
		}
		defer f.Close()
		dst = f
	}
	outw := bufio.NewWriter(dst)

	var bar *progress.Bar
	if o.Progress {
		bar = progress.Start(stderr, "aligned targets: ", len(recs), thr)
	}

	eng := search.Engine
	if !runutil.NeedAlignments(o.Output, o.Pretty) {
		eng = search.WindowsOnly
	}
	hits, serr := search.Search(parent, eng, query, recs, search.Config{
		Threads:  thr,
		TopN:     o.Top,
		MinScore: o.MinScore,
		OnTarget: bar.OnTarget(),
	})
	bar.Finish()
	if serr != nil {
		if errors.Is(serr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", serr)
		return 3
	}

	werr := cmdutil.WriteHits(parent, outw, o.Output, !o.NoHeader, o.Pretty, pretty.DefaultOptions, hits)
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if errors.Is(werr, context.Canceled) {
		return 130
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return 3
	}

	if mem != nil {
		cmdutil.Infof(stderr, true, "search took %s; peak heap %s",
			time.Since(start).Round(time.Millisecond), humanize.Bytes(mem.Stop()))
	}

	if !anyPositive(hits) {
		return o.NoMatchExitCode
	}
	return 0
}

func anyPositive(hits []search.Hit) bool {
	for _, h := range hits {
		if h.Score > 0 {
			return true
		}
	}
	return false
}
