package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away (EPIPE or a
// closed io.Pipe), as when output is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// quietPipe maps broken-pipe errors to nil and passes others through.
func quietPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
