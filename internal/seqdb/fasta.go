package seqdb

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// Symbols are opaque to the aligner; do not reject non-IUPAC bytes.
	seq.ValidateSeq = false
}

// LoadFASTA reads every record of a (gzipped) FASTA or FASTQ file; "-" is stdin.
func LoadFASTA(path string) ([]Record, error) {
	reader, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	defer reader.Close()

	var out []Record
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "read %s", path)
		}
		desc := string(record.Name)
		out = append(out, Record{
			ID:          string(record.ID),
			Description: desc,
			Seq:         append([]byte(nil), record.Seq.Seq...),
		})
	}
	return out, nil
}

// WriteFASTA writes one two-line record per entry, header = Description.
func WriteFASTA(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.Description, r.Seq); err != nil {
			return err
		}
	}
	return nil
}
