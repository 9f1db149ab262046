// internal/writers/registry.go
package writers

import (
	"io"

	"github.com/pkg/errors"
)

// HitWriters maps an output format to its handler. Handlers register in
// init() blocks; the payload is a hitArgs.
var HitWriters = map[string]func(w io.Writer, payload interface{}) error{}

// RegisterHit installs fn for format (last wins).
func RegisterHit(format string, fn func(io.Writer, interface{}) error) { HitWriters[format] = fn }

// WriteHits dispatches payload to the handler registered for format.
func WriteHits(format string, w io.Writer, payload interface{}) error {
	fn, ok := HitWriters[format]
	if !ok {
		return errors.Errorf("unknown hit format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
