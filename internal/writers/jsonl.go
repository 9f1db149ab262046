// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"localign/internal/jsonlutil"
	"localign/internal/output"
	"localign/internal/search"
)

// StartHitJSONLWriter streams each hit as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int) (chan<- search.Hit, <-chan error) {
	return jsonlutil.Start[search.Hit](out, bufSize,
		func(enc *json.Encoder, h search.Hit) error {
			return enc.Encode(output.ToAPIHit(h))
		},
		IsBrokenPipe,
	)
}
