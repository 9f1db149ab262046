package bench

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"localign/internal/seqdb"
)

// BlastConfig locates the external blastn binary and its database.
type BlastConfig struct {
	Path     string // blastn executable
	DB       string // -db argument
	WordSize int    // default 4
}

// BlastArgs returns the blastn argument list for a query file.
func BlastArgs(cfg BlastConfig, queryFile string) []string {
	ws := cfg.WordSize
	if ws <= 0 {
		ws = 4
	}
	return []string{
		"-query", queryFile,
		"-db", cfg.DB,
		"-outfmt", "6",
		"-word_size", strconv.Itoa(ws),
	}
}

// Blastn runs blastn on query, streaming its tabular output to out.
// Peak memory is the child's maximum resident set size.
func Blastn(ctx context.Context, cfg BlastConfig, query []byte, out io.Writer) (Report, error) {
	rep := Report{Name: "blastn"}
	if cfg.Path == "" || cfg.DB == "" {
		return rep, errors.New("blastn needs both a binary path and a database")
	}

	dir, err := os.MkdirTemp("", "localign-blast-")
	if err != nil {
		return rep, errors.Wrap(err, "temp dir")
	}
	defer os.RemoveAll(dir)

	qf := filepath.Join(dir, "query.fasta")
	f, err := os.Create(qf)
	if err != nil {
		return rep, errors.Wrap(err, "write query")
	}
	werr := seqdb.WriteFASTA(f, []seqdb.Record{{ID: "query", Description: "query", Seq: query}})
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return rep, errors.Wrap(werr, "write query")
	}

	cmd := exec.CommandContext(ctx, cfg.Path, BlastArgs(cfg, qf)...)
	var stderr bytes.Buffer
	cmd.Stdout = out
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	rep.Elapsed = time.Since(start)
	if cmd.ProcessState != nil {
		rep.PeakMem = maxRSS(cmd.ProcessState)
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return rep, errors.Wrapf(err, "run %s: %s", cfg.Path, msg)
		}
		return rep, errors.Wrapf(err, "run %s", cfg.Path)
	}
	return rep, nil
}
