// internal/cliutil/cliutil.go
package cliutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like arguments. "-" (stdin)
// passes through untouched; a glob that matches nothing is an error.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, errors.Wrapf(err, "bad glob %q", a)
			}
			if len(m) == 0 {
				return nil, errors.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// ResolveQuery returns the query sequence from exactly one of an inline
// value or a file. A file is read as FASTA/CSV by the caller-supplied loader
// and must hold exactly one record.
func ResolveQuery(inline, file string, load func(string) ([][]byte, error)) ([]byte, error) {
	switch {
	case inline != "" && file != "":
		return nil, errors.New("use either --query or --query-file, not both")
	case inline != "":
		return []byte(strings.TrimSpace(inline)), nil
	case file == "":
		return nil, errors.New("a query is required (--query or --query-file)")
	}
	if file != "-" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrap(err, "query file")
		}
	}
	seqs, err := load(file)
	if err != nil {
		return nil, err
	}
	if len(seqs) != 1 {
		return nil, errors.Errorf("query file %s: want exactly 1 sequence, found %d", file, len(seqs))
	}
	return seqs[0], nil
}
