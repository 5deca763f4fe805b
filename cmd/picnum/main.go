// Command picnum converts numbers between bases, using the forthrt runtime's
// data space and pictured numeric output the way translated Forth code does.
//
// Each argument file is converted by its own Runtime, concurrently, with
// results written to stdout in argument order. Without arguments, standard
// input is converted; if it is a terminal, picnum prompts for lines instead.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jcorbin/forthrt"
	"github.com/jcorbin/forthrt/internal/fileinput"
	"github.com/jcorbin/forthrt/internal/logio"
	"github.com/jcorbin/forthrt/internal/runeio"
)

func main() {
	log := logio.NewLogger(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	ctx := context.Background()

	var (
		cv       converter
		timeout  time.Duration
		dataSize uint
		fill     string
		dump     bool
		trace    bool
	)
	flag.IntVar(&cv.ibase, "ibase", 10, "input numeric base")
	flag.IntVar(&cv.obase, "obase", 16, "output numeric base")
	flag.BoolVar(&cv.unsigned, "unsigned", false, "render numbers as unsigned")
	flag.IntVar(&cv.width, "width", 0, "minimum output field width")
	flag.StringVar(&fill, "fill", "<SP>", "field fill character")
	flag.UintVar(&dataSize, "data-size", forthrt.DefaultDataSize, "data space size in bytes")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&dump, "dump", false, "dump runtime state after converting")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	for _, base := range []int{cv.ibase, cv.obase} {
		if base < 2 || base > 36 {
			log.Errorf("invalid base %v, must be in 2..36", base)
			return
		}
	}
	if r, err := runeio.UnquoteRune(fill); err != nil {
		log.Errorf("invalid -fill %q: %v", fill, err)
		return
	} else if r > 0x7f {
		log.Errorf("invalid -fill %q: must be an ASCII character", fill)
		return
	} else {
		cv.fill = byte(r)
	}

	cv.log = log
	cv.opts = append(cv.opts, forthrt.WithDataSize(dataSize))
	if trace {
		cv.opts = append(cv.opts, forthrt.WithLogf(log.Leveledf("TRACE")))
	}
	if dump {
		dumpOut := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer dumpOut.Close()
		cv.dump = dumpOut
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	args := flag.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		log.ErrorIf(interact(ctx, &cv, os.Stdout))
		return
	}
	log.ErrorIf(convertFiles(ctx, &cv, os.Stdout, args...))
}

// convertFiles converts each named file, or stdin if none, on its own
// goroutine and Runtime. Outputs are written to out in argument order, once
// all conversions have finished.
func convertFiles(ctx context.Context, cv *converter, out io.Writer, names ...string) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	eg, ctx := errgroup.WithContext(ctx)
	outs := make([]bytes.Buffer, len(names))
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			r, err := open(name)
			if err != nil {
				return err
			}
			in := fileinput.Input{Queue: []io.Reader{r}}
			defer in.Close()
			return cv.convertAll(ctx, cv.newRuntime(&outs[i]), &in)
		})
	}
	err := eg.Wait()

	for i := range outs {
		if _, werr := outs[i].WriteTo(out); err == nil && werr != nil {
			err = fmt.Errorf("output failed: %w", werr)
		}
	}
	return err
}

func open(name string) (io.Reader, error) {
	if name == "-" {
		return namedReader{os.Stdin, "<stdin>"}, nil
	}
	return os.Open(name)
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
