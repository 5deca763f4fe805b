// Package flushio provides buffered writers with an explicit Flush, so that
// output may be batched until a program halts or waits for input.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher around io.Discard.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher returns w if it already implements WriteFlusher. In-memory
// buffers, like bytes.Buffer and strings.Builder, get a no-op Flush. Any
// other writer is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
