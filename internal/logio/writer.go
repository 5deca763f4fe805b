// Package logio adapts between line oriented logging functions and byte
// streams.
package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer that emits each complete line written to it
// through a printf-style Logf function, such as testing.T.Logf.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, logging any completed lines; it is safe to call from
// multiple goroutines and never fails.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.logLines(false)
	return len(p), nil
}

// Sync logs any partial line remaining in the buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.logLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) logLines(partial bool) {
	for lw.buf.Len() > 0 {
		line := lw.buf.Bytes()
		i := bytes.IndexByte(line, '\n')
		if i < 0 {
			if !partial {
				return
			}
			i = len(line)
		}
		lw.Logf("%s", line[:i])
		lw.buf.Next(i + 1)
	}
}
