package forthrt

import (
	"io"

	"github.com/jcorbin/forthrt/internal/flushio"
)

const (
	// DefaultDataSize is the data space capacity, in bytes, unless changed
	// by WithDataSize.
	DefaultDataSize = 64 * 1024

	// DefaultPicSize is the pictured numeric output buffer capacity: more
	// than the 64 binary digits, plus sign, of the widest double cell.
	DefaultPicSize = 100

	// DefaultPadSize is the size of the PAD scratch buffer.
	DefaultPadSize = 200
)

// Option configures a Runtime.
type Option interface{ apply(rt *Runtime) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option { return options(opts) }

// WithDataSize sets the data space capacity in bytes.
func WithDataSize(n uint) Option { return dataSizeOption(n) }

// WithDataBase sets the address of the first data space byte.
func WithDataBase(addr UCell) Option { return dataBaseOption(addr) }

// WithPageSize sets how many bytes of data space are allocated at a time, as
// the program first touches them.
func WithPageSize(n uint) Option { return pageSizeOption(n) }

// WithPicSize sets the pictured numeric output buffer capacity.
func WithPicSize(n int) Option { return picSizeOption(n) }

// WithPadSize sets the PAD scratch buffer size.
func WithPadSize(n int) Option { return padSizeOption(n) }

// WithBase sets the initial numeric base; invalid bases are ignored.
func WithBase(base int) Option { return baseOption(base) }

// WithOutput sets the stream written by Emit, Type, and the display words,
// replacing (after flushing) any prior one.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds another output stream, written in addition to any prior one.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithAbort sets a function called with the cause of any fatal halt, before
// the halting operation unwinds. It may record the error, or exit the process.
func WithAbort(abort func(err error)) Option { return abortOption(abort) }

var defaultOptions = Options(
	dataSizeOption(DefaultDataSize),
	picSizeOption(DefaultPicSize),
	padSizeOption(DefaultPadSize),
	baseOption(10),
)

type options []Option

func (opts options) apply(rt *Runtime) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(rt)
		}
	}
}

type (
	dataSizeOption uint
	dataBaseOption UCell
	pageSizeOption uint
	picSizeOption  int
	padSizeOption  int
	baseOption     int
	outputOption   struct{ io.Writer }
	teeOption      struct{ io.Writer }
	withLogfn      func(mess string, args ...interface{})
	abortOption    func(err error)
)

func (n dataSizeOption) apply(rt *Runtime) { rt.dataSize = uint(n) }
func (a dataBaseOption) apply(rt *Runtime) { rt.dataBase = UCell(a) }
func (n pageSizeOption) apply(rt *Runtime) { rt.data.PageSize = uint(n) }

func (n picSizeOption) apply(rt *Runtime) {
	if n >= 0 {
		rt.pic = make([]byte, n)
		rt.picIndex = int(n)
	}
}

func (n padSizeOption) apply(rt *Runtime) {
	if n >= 0 {
		rt.pad = make([]byte, n)
	}
}

func (b baseOption) apply(rt *Runtime) {
	if validBase(int(b)) {
		rt.base = int(b)
	}
}

func (o outputOption) apply(rt *Runtime) {
	if rt.out != nil {
		rt.out.Flush()
	}
	rt.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(rt *Runtime) {
	rt.out = flushio.WriteFlushers(rt.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(rt *Runtime) { rt.logfn = logfn }

func (abort abortOption) apply(rt *Runtime) { rt.abort = abort }
