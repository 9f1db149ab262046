package app

import (
	"strings"

	"github.com/spf13/cobra"

	"localign-core/align"
	"localign/internal/cli"
	"localign/internal/output"
	"localign/internal/pretty"
)

func newAlignCmd() *cobra.Command {
	var o cli.AlignOptions
	cmd := &cobra.Command{
		Use:   "align QUERY TARGET",
		Short: "locally align two sequences and print every optimal alignment",
		Example: `  localign align AAAA AAAA
  localign align -o text --pretty ACGTTGCA TTACGTAGCA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return usageErr(err)
			}
			q := []byte(strings.TrimSpace(args[0]))
			t := []byte(strings.TrimSpace(args[1]))
			res := align.Local(q, t)

			w := cmd.OutOrStdout()
			var err error
			if o.Output == output.FormatText {
				var render func(align.Result) string
				if o.Pretty {
					render = func(r align.Result) string {
						return pretty.RenderAll(r.Score, r.Windows, r.Alignments, pretty.DefaultOptions)
					}
				}
				err = output.WritePairText(w, res, render)
			} else {
				err = output.WritePairJSON(w, res)
			}
			if err != nil {
				return &exitError{code: 3, err: err}
			}
			return nil
		},
	}
	o.Register(cmd.Flags())
	return cmd
}
