package seqdb

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Write serializes recs in the named format.
func Write(w io.Writer, format string, recs []Record) error {
	switch format {
	case FormatFASTA:
		return WriteFASTA(w, recs)
	case FormatCSV:
		return WriteCSV(w, recs)
	}
	return errors.Errorf("unknown corpus format %q", format)
}

type gzipFile struct {
	*gzip.Writer
	fh *os.File
}

func (g *gzipFile) Close() error {
	err := g.Writer.Close()
	if cerr := g.fh.Close(); err == nil {
		err = cerr
	}
	return err
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens path for writing; "-" is stdout and a .gz suffix compresses.
// Close must be called to flush a gzip stream.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		return &gzipFile{Writer: gzip.NewWriter(fh), fh: fh}, nil
	}
	return fh, nil
}
