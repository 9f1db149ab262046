package app

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"localign/internal/cli"
	"localign/internal/cmdutil"
	"localign/internal/seqdb"
)

// writeCorpus writes recs to path ("-" = w) in format.
func writeCorpus(w io.Writer, path, format string, recs []seqdb.Record) error {
	if path == "-" {
		if err := seqdb.Write(w, format, recs); err != nil {
			return &exitError{code: 3, err: err}
		}
		return nil
	}
	f, err := seqdb.Create(path)
	if err != nil {
		return &exitError{code: 3, err: err}
	}
	werr := seqdb.Write(f, format, recs)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return &exitError{code: 3, err: werr}
	}
	return nil
}

func newConvertCmd() *cobra.Command {
	var o cli.ConvertOptions
	cmd := &cobra.Command{
		Use:   "convert --in FILE --out FILE",
		Short: "convert a corpus between CSV (Description,Sequence) and FASTA",
		Example: `  localign convert --in viral.csv --out viral.fasta
  localign convert --in viral.fasta.gz --out - --to csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			recs, err := seqdb.Load(o.In)
			if err != nil {
				return usageErr(err)
			}
			return writeCorpus(cmd.OutOrStdout(), o.Out, o.Target(), recs)
		},
	}
	o.Register(cmd.Flags())
	return cmd
}

func newScrubCmd() *cobra.Command {
	var o cli.ScrubOptions
	cmd := &cobra.Command{
		Use:   "scrub --in FILE --out FILE [--keyword TEXT]... [--dedup]",
		Short: "keep complete, non-empty records (and optionally drop duplicate sequences)",
		Example: `  localign scrub --in viral.csv --out scrubbed.fasta
  localign scrub --in viral.fasta --out clean.csv -k "complete genome" --dedup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			recs, err := seqdb.Load(o.In)
			if err != nil {
				return usageErr(err)
			}
			kept := seqdb.Scrub(recs, o.Keywords)
			dups := 0
			if o.Dedup {
				kept, dups = seqdb.Dedup(kept)
			}
			if err := writeCorpus(cmd.OutOrStdout(), o.Out, o.Target(), kept); err != nil {
				return err
			}
			cmdutil.Infof(cmd.ErrOrStderr(), !o.Quiet, "kept %s of %s records (%s duplicate sequences dropped)",
				humanize.Comma(int64(len(kept))), humanize.Comma(int64(len(recs))), humanize.Comma(int64(dups)))
			return nil
		},
	}
	o.Register(cmd.Flags())
	return cmd
}
