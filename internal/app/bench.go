package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"localign/internal/appcore"
	"localign/internal/bench"
	"localign/internal/cli"
	"localign/internal/cmdutil"
	"localign/internal/runutil"
	"localign/internal/seqdb"
)

func newBenchCmd() *cobra.Command {
	var o cli.BenchOptions
	cmd := &cobra.Command{
		Use:   "bench --query SEQ --db FILE [--wfa] [--blastn PATH --blast-db DB]",
		Short: "time the aligner (and optional WFA / blastn runs) and report peak memory",
		Example: `  localign bench --query-file q.fa --db viral.fasta --wfa
  localign bench --query-file q.fa --skip-local --blastn /opt/blast/bin/blastn --blast-db scrubbed_db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			defer startProfile(o.Common)()
			ctx := cmd.Context()
			stderr := cmd.ErrOrStderr()

			query, err := appcore.LoadQuery(o.Query, o.QueryFile)
			if err != nil {
				return usageErr(err)
			}
			var recs []seqdb.Record
			if len(o.DBs) > 0 {
				if recs, err = appcore.LoadCorpus(o.DBs); err != nil {
					return usageErr(err)
				}
			}
			thr := runutil.EffectiveThreads(o.Threads, len(recs))
			cmdutil.Infof(stderr, o.Verbose, "bench: %d records, query length %d, %d threads", len(recs), len(query), thr)

			var reps []bench.Report
			if !o.SkipLocal {
				rep, err := bench.Engine(ctx, query, recs, thr)
				if err != nil {
					return runErr(err)
				}
				reps = append(reps, rep)
			}
			if o.WFA {
				rep, err := bench.WFA(ctx, query, recs)
				if err != nil {
					return runErr(err)
				}
				reps = append(reps, rep)
			}
			if o.Blastn != "" {
				var out io.Writer = io.Discard
				if o.BlastOut != "" {
					f, err := os.Create(o.BlastOut)
					if err != nil {
						return &exitError{code: 3, err: err}
					}
					defer f.Close()
					out = f
				}
				rep, err := bench.Blastn(ctx, bench.BlastConfig{Path: o.Blastn, DB: o.BlastDB, WordSize: o.WordSize}, query, out)
				if err != nil {
					return runErr(err)
				}
				reps = append(reps, rep)
			}
			if err := ctx.Err(); err != nil {
				return &exitError{code: 130}
			}
			if err := bench.WriteReports(cmd.OutOrStdout(), reps); err != nil {
				return &exitError{code: 3, err: err}
			}
			return nil
		},
	}
	o.Register(cmd.Flags())
	return cmd
}

// runErr maps a run failure to exit 130 (silent) on cancellation, else 3.
func runErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return &exitError{code: 130}
	}
	return &exitError{code: 3, err: err}
}
