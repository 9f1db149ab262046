// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"localign/internal/version"
	"localign/internal/writers"
)

// exitError carries a process exit code out of a cobra RunE. A nil err
// means the command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// withCode turns an exit code into a RunE result.
func withCode(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}

func usageErr(err error) error { return &exitError{code: 2, err: err} }

// NewRootCommand builds the command tree writing to stdout/stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "localign",
		Short: "linear-space local sequence alignment",
		Long: `localign: exact Smith-Waterman local alignment in linear space.

Scores with match +1, mismatch -1, gap -1. Every maximal-scoring local
window is found in one linear-space pass and aligned with Hirschberg's
algorithm, so memory stays proportional to sequence length.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("localign version {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErr(fmt.Errorf("%v (see '%s --help')", err, c.CommandPath()))
	})

	root.AddCommand(
		newSearchCmd(),
		newAlignCmd(),
		newConvertCmd(),
		newScrubCmd(),
		newBenchCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "localign version %s\n", version.Version)
			return err
		},
	}
}

// RunContext runs the CLI with argv and returns the process exit code:
// 0 ok, 1 no match (configurable), 2 usage/input, 3 output, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := NewRootCommand(outw, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if err == nil {
		return 0
	}
	var xe *exitError
	if errors.As(err, &xe) {
		if xe.err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", xe.err)
		}
		return xe.code
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	// unknown command, wrong argument count
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return 2
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
