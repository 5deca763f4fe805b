package forthrt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcorbin/forthrt/cell"
	"github.com/jcorbin/forthrt/internal/flushio"
	"github.com/jcorbin/forthrt/internal/panicerr"
)

// New creates a Runtime with an empty data space and the default numeric base
// of 10, after applying any options.
//
// New panics unless the whole data space, and the address one past its end,
// can be held in a cell.
func New(opts ...Option) *Runtime {
	var rt Runtime
	defaultOptions.apply(&rt)
	Options(opts...).apply(&rt)
	if rt.out == nil {
		rt.out = flushio.Discard
	}
	end := uint64(rt.dataBase) + uint64(rt.dataSize)
	if end >= 1<<cell.Bits {
		panic(fmt.Sprintf("forthrt: data space @%v + %v exceeds the address range", rt.dataBase, rt.dataSize))
	}
	rt.data.Limit = uint(end)
	rt.here = rt.dataBase
	return &rt
}

// Run calls f with the Runtime on an isolated goroutine, so that a fatal
// halt inside f returns as its underlying error (e.g. one that errors.Is
// ErrDataSpaceOverflow) rather than ending the process. Other panics return as
// errors carrying the panic value and stack. Output is flushed when f
// returns normally.
func (rt *Runtime) Run(ctx context.Context, f func(rt *Runtime) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := panicerr.Recover("forthrt", func() error {
		err := f(rt)
		if ferr := rt.out.Flush(); err == nil && ferr != nil {
			err = outputError{ferr}
		}
		return err
	})
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	return err
}
