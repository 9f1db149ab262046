// internal/cli/options.go
package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"localign/internal/output"
	"localign/internal/seqdb"
)

// Defaults shared by commands.
const (
	DefaultTop             = 10
	DefaultNoMatchExitCode = 1
)

// Common holds the flags every heavy command carries.
type Common struct {
	Quiet   bool
	Verbose bool

	CPUProfile bool
	MemProfile bool
	ProfileDir string
}

func (c *Common) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "print run summary, elapsed time and peak memory to stderr")
	fs.BoolVar(&c.CPUProfile, "cpu-profile", false, "write a CPU profile to --profile-dir")
	fs.BoolVar(&c.MemProfile, "mem-profile", false, "write a heap profile to --profile-dir")
	fs.StringVar(&c.ProfileDir, "profile-dir", ".", "directory for profile output")
}

func (c Common) validate() error {
	if c.CPUProfile && c.MemProfile {
		return errors.New("--cpu-profile and --mem-profile are mutually exclusive")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// queryInput is an inline query or a one-record query file.
type queryInput struct {
	Query     string
	QueryFile string
}

func (q *queryInput) register(fs *pflag.FlagSet) {
	fs.StringVar(&q.Query, "query", "", "query sequence [*]")
	fs.StringVar(&q.QueryFile, "query-file", "", "FASTA/CSV file holding exactly one query sequence [*]")
}

func (q queryInput) validate() error {
	if q.Query != "" && q.QueryFile != "" {
		return errors.New("use either --query or --query-file, not both")
	}
	if strings.TrimSpace(q.Query) == "" && q.QueryFile == "" {
		return errors.New("a query is required (--query or --query-file)")
	}
	return nil
}

// SearchOptions configures `search`.
type SearchOptions struct {
	Common
	queryInput

	DBs      []string
	Top      int
	Threads  int
	MinScore int

	Output          string
	Pretty          bool
	NoHeader        bool
	Out             string
	Progress        bool
	NoMatchExitCode int
}

// Register binds the search flags to fs.
func (o *SearchOptions) Register(fs *pflag.FlagSet) {
	o.queryInput.register(fs)
	fs.StringSliceVar(&o.DBs, "db", nil, "corpus file(s): FASTA or CSV, optionally gzipped; globs allowed; '-' for stdin [*]")
	fs.IntVarP(&o.Top, "top", "n", DefaultTop, "report the N best targets (0 = all)")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fs.IntVar(&o.MinScore, "min-score", 0, "drop targets scoring below this")
	fs.StringVarP(&o.Output, "output", "o", output.FormatJSON, "output format: json | jsonl | text")
	fs.BoolVar(&o.Pretty, "pretty", false, "append alignment blocks to text output")
	fs.BoolVar(&o.NoHeader, "no-header", false, "omit the TSV header in text output")
	fs.StringVar(&o.Out, "out", "", "write results to this file instead of stdout")
	fs.BoolVar(&o.Progress, "progress", false, "draw a progress bar on stderr")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", DefaultNoMatchExitCode, "exit code when no target scores above 0")
	o.Common.register(fs)
}

// Validate checks flag invariants before any work starts.
func (o SearchOptions) Validate() error {
	if err := o.queryInput.validate(); err != nil {
		return err
	}
	if len(o.DBs) == 0 {
		return errors.New("at least one --db is required")
	}
	if o.Top < 0 {
		return errors.Errorf("--top must be >= 0 (got %d)", o.Top)
	}
	if o.Threads < 0 {
		return errors.Errorf("--threads must be >= 0 (got %d)", o.Threads)
	}
	if !output.IsFormat(o.Output) {
		return errors.Errorf("unknown --output %q (want json, jsonl or text)", o.Output)
	}
	if o.Pretty && o.Output != output.FormatText {
		return errors.New("--pretty only applies to --output text")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 125 {
		return errors.Errorf("--no-match-exit-code must be in [0,125] (got %d)", o.NoMatchExitCode)
	}
	return o.Common.validate()
}

// AlignOptions configures `align`.
type AlignOptions struct {
	Output string
	Pretty bool
}

// Register binds the align flags to fs.
func (o *AlignOptions) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", output.FormatJSON, "output format: json | text")
	fs.BoolVar(&o.Pretty, "pretty", false, "append alignment blocks to text output")
}

// Validate checks flag invariants.
func (o AlignOptions) Validate() error {
	if o.Output != output.FormatJSON && o.Output != output.FormatText {
		return errors.Errorf("unknown --output %q (want json or text)", o.Output)
	}
	if o.Pretty && o.Output != output.FormatText {
		return errors.New("--pretty only applies to --output text")
	}
	return nil
}

// ConvertOptions configures `convert`.
type ConvertOptions struct {
	In  string
	Out string
	To  string
}

// Register binds the convert flags to fs.
func (o *ConvertOptions) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.In, "in", "i", "", "input corpus, FASTA or CSV ('-' for stdin) [*]")
	fs.StringVarP(&o.Out, "out", "O", "", "output file ('-' for stdout) [*]")
	fs.StringVar(&o.To, "to", "", "output format: fasta | csv (default: from --out extension)")
}

// Validate checks flag invariants.
func (o ConvertOptions) Validate() error {
	if o.In == "" || o.Out == "" {
		return errors.New("both --in and --out are required")
	}
	if o.To != "" && o.To != seqdb.FormatFASTA && o.To != seqdb.FormatCSV {
		return errors.Errorf("unknown --to %q (want fasta or csv)", o.To)
	}
	if o.Out == "-" && o.To == "" {
		return errors.New("--to is required when writing to stdout")
	}
	return nil
}

// Target returns the output format.
func (o ConvertOptions) Target() string {
	if o.To != "" {
		return o.To
	}
	return seqdb.FormatOf(o.Out)
}

// ScrubOptions configures `scrub`.
type ScrubOptions struct {
	ConvertOptions
	Keywords []string
	Dedup    bool
	Quiet    bool
}

// Register binds the scrub flags to fs.
func (o *ScrubOptions) Register(fs *pflag.FlagSet) {
	o.ConvertOptions.Register(fs)
	fs.StringArrayVarP(&o.Keywords, "keyword", "k", append([]string(nil), seqdb.DefaultKeywords...),
		"keep records whose description contains this text (repeatable)")
	fs.BoolVar(&o.Dedup, "dedup", false, "drop records whose sequence repeats an earlier one")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress the summary line")
}

// Validate checks flag invariants.
func (o ScrubOptions) Validate() error {
	if err := o.ConvertOptions.Validate(); err != nil {
		return err
	}
	if len(o.Keywords) == 0 {
		return errors.New("at least one --keyword is required")
	}
	return nil
}

// BenchOptions configures `bench`.
type BenchOptions struct {
	Common
	queryInput

	DBs     []string
	Threads int

	WFA       bool
	Blastn    string
	BlastDB   string
	WordSize  int
	BlastOut  string
	SkipLocal bool
}

// Register binds the bench flags to fs.
func (o *BenchOptions) Register(fs *pflag.FlagSet) {
	o.queryInput.register(fs)
	fs.StringSliceVar(&o.DBs, "db", nil, "corpus file(s) for the in-process runs")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fs.BoolVar(&o.WFA, "wfa", false, "also time WFA global alignment against every target")
	fs.BoolVar(&o.SkipLocal, "skip-local", false, "do not time the local aligner")
	fs.StringVar(&o.Blastn, "blastn", "", "path to a blastn binary to time")
	fs.StringVar(&o.BlastDB, "blast-db", "", "blastn -db argument")
	fs.IntVar(&o.WordSize, "word-size", 4, "blastn -word_size")
	fs.StringVar(&o.BlastOut, "blast-out", "", "write blastn tabular output here (default: discard)")
	o.Common.register(fs)
}

// Validate checks flag invariants.
func (o BenchOptions) Validate() error {
	if err := o.queryInput.validate(); err != nil {
		return err
	}
	inProcess := !o.SkipLocal || o.WFA
	if inProcess && len(o.DBs) == 0 {
		return errors.New("--db is required for the in-process runs")
	}
	if o.Threads < 0 {
		return errors.Errorf("--threads must be >= 0 (got %d)", o.Threads)
	}
	if (o.Blastn == "") != (o.BlastDB == "") {
		return errors.New("--blastn and --blast-db go together")
	}
	if o.SkipLocal && !o.WFA && o.Blastn == "" {
		return errors.New("nothing to run")
	}
	if o.WordSize < 4 {
		return errors.Errorf("--word-size must be >= 4 (got %d)", o.WordSize)
	}
	return o.Common.validate()
}
