package forthrt

import (
	"fmt"

	"github.com/jcorbin/forthrt/internal/flushio"
	"github.com/jcorbin/forthrt/internal/mem"
)

// Runtime holds all run time state of one translated Forth program: its
// interpreter state flag and numeric base, its data space, its pictured
// numeric output buffer, its pad, and its output stream.
//
// A Runtime must not be used by more than one goroutine at a time; if a
// program runs several threads of control over the same Runtime, it must
// serialize them.
type Runtime struct {
	logging
	abort func(err error)
	out   flushio.WriteFlusher

	state Cell
	base  int

	dataBase UCell
	dataSize uint
	here     UCell
	data     mem.Bytes

	pic      []byte
	picIndex int

	pad []byte
}

// halt aborts the current operation with a fatal error: any output is
// flushed, the abort hook runs, and then the Runtime panics with a
// haltError. Run recovers such panics; elsewhere they end the process.
func (rt *Runtime) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if rt.out != nil {
			rt.out.Flush()
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		rt.logf("!", "halt error: %v", err)
	}()

	if rt.abort != nil {
		rt.abort(err)
	}

	panic(haltError{err})
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
