package seqdb

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	colDescription = "Description"
	colSequence    = "Sequence"
)

// LoadCSV reads a corpus CSV with a header row naming Description and
// Sequence columns. Other columns are ignored.
func LoadCSV(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	defer func() { _ = rc.Close() }()
	recs, err := ReadCSV(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return recs, nil
}

// ReadCSV parses corpus rows from r.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV: missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "csv header")
	}
	di, si := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) {
		case colDescription:
			di = i
		case colSequence:
			si = i
		}
	}
	if di < 0 || si < 0 {
		return nil, errors.Errorf("csv header must name %q and %q columns, got %q", colDescription, colSequence, header)
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "csv")
		}
		if len(row) <= di || len(row) <= si {
			line, _ := cr.FieldPos(0)
			return nil, errors.Errorf("csv line %d: want at least %d fields, got %d", line, max(di, si)+1, len(row))
		}
		desc := strings.Trim(strings.TrimSpace(row[di]), `"`)
		out = append(out, Record{
			ID:          IDFromDescription(desc),
			Description: desc,
			Seq:         []byte(strings.TrimSpace(row[si])),
		})
	}
	return out, nil
}

// WriteCSV writes a Description,Sequence header and one row per record.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colDescription, colSequence}); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{r.Description, string(r.Seq)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
