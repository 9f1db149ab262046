package output

// Output formats understood by the writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV hit output.
const TSVHeader = "rank\tscore\tid\tn_alignments\tdescription"

// IsFormat reports whether s names a known format.
func IsFormat(s string) bool {
	switch s {
	case FormatText, FormatJSON, FormatJSONL:
		return true
	}
	return false
}
