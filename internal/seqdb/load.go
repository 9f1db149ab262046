package seqdb

import (
	"strings"
)

// Format names accepted by Load and the convert/scrub commands.
const (
	FormatFASTA = "fasta"
	FormatCSV   = "csv"
)

// FormatOf guesses a corpus format from the file name.
func FormatOf(path string) string {
	p := strings.TrimSuffix(strings.ToLower(path), ".gz")
	if strings.HasSuffix(p, ".csv") {
		return FormatCSV
	}
	return FormatFASTA
}

// Load reads a corpus file in the format FormatOf picks.
func Load(path string) ([]Record, error) {
	if FormatOf(path) == FormatCSV {
		return LoadCSV(path)
	}
	return LoadFASTA(path)
}

// LoadAll concatenates the records of every path, in order.
func LoadAll(paths []string) ([]Record, error) {
	var out []Record
	for _, p := range paths {
		recs, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}
