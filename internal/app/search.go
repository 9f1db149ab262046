package app

import (
	"github.com/spf13/cobra"

	"localign/internal/appcore"
	"localign/internal/cli"
)

func newSearchCmd() *cobra.Command {
	var o cli.SearchOptions
	cmd := &cobra.Command{
		Use:   "search --query SEQ --db FILE [flags]",
		Short: "rank corpus sequences by local alignment score against a query",
		Example: `  localign search --query ACGTTGCA --db viral.fasta
  localign search --query-file q.fa --db 'db/*.csv.gz' -n 5 -o text --pretty
  localign search --query ACGT --db viral.fasta -o jsonl --top 0 --progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			defer startProfile(o.Common)()
			return withCode(appcore.RunSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), o))
		},
	}
	o.Register(cmd.Flags())
	return cmd
}
