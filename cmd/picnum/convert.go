package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/forthrt"
	"github.com/jcorbin/forthrt/cell"
	"github.com/jcorbin/forthrt/internal/fileinput"
	"github.com/jcorbin/forthrt/internal/logio"
)

// converter re-renders number tokens from one base into another, passing each
// through the data space and the pictured numeric output buffer of a Runtime.
type converter struct {
	ibase    int
	obase    int
	unsigned bool
	width    int
	fill     byte
	opts     []forthrt.Option

	log  *logio.Logger
	dump io.Writer
}

// newRuntime creates a Runtime writing converted numbers to out.
func (cv *converter) newRuntime(out io.Writer) *forthrt.Runtime {
	opts := []forthrt.Option{
		forthrt.WithOutput(out),
		forthrt.WithBase(cv.ibase),
	}
	return forthrt.New(append(opts, cv.opts...)...)
}

// convertAll converts every token of in, one per output line. Tokens that are
// not numbers are logged and skipped; a halt stops the conversion, and is
// returned annotated with the location of the token that caused it.
func (cv *converter) convertAll(ctx context.Context, rt *forthrt.Runtime, in *fileinput.Input) error {
	var loc fileinput.Location
	err := rt.Run(ctx, func(rt *forthrt.Runtime) error {
		mark := rt.FetchHere()
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			token, tokLoc, err := in.Token()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}

			// numbers are recorded in data space one input line at a time
			if tokLoc != loc {
				rt.SetHere(mark)
			}
			loc = tokLoc

			if err := cv.convert(rt, token); err != nil {
				cv.log.Errorf("%v: %v", loc, err)
			}
		}
	})
	if err != nil && loc.Name != "" {
		err = fmt.Errorf("%v: %w", loc, err)
	}
	if cv.dump != nil {
		if derr := rt.Dump(cv.dump); err == nil {
			err = derr
		}
	}
	return err
}

// convert parses token in the input base, and writes it in the output base,
// right aligned in a field of at least width characters.
func (cv *converter) convert(rt *forthrt.Runtime, token string) error {
	if err := rt.SetBase(cv.ibase); err != nil {
		return err
	}
	n, double, err := rt.ParseNumber(token)
	if err != nil {
		return err
	}

	addr := rt.FetchHere()
	rt.TwoComma(n)
	n = rt.TwoFetch(addr)

	if err := rt.SetBase(cv.obase); err != nil {
		return err
	}
	var sign forthrt.Cell
	rt.PicStart()
	switch {
	case cv.unsigned && double:
		rt.PicDigits(forthrt.UDCell(n))
	case cv.unsigned:
		rt.PicDigits(forthrt.UDCell(cell.ULowHalf(forthrt.UDCell(n))))
	case double:
		rt.PicDigits(forthrt.UDCell(cell.DAbs(n)))
		sign = cell.HighHalf(n)
	default:
		sign = cell.LowHalf(n)
		rt.PicDigits(forthrt.UDCell(cell.DAbs(forthrt.DCell(sign))))
	}

	// other than spaces, fill goes between the sign and the digits
	if cv.fill != ' ' {
		width := cv.width
		if sign < 0 {
			width--
		}
		for rt.PicLen() < width {
			rt.PicHold(cv.fill)
		}
	}
	rt.PicSign(sign)
	for rt.PicLen() < cv.width {
		rt.PicHold(cv.fill)
	}
	rt.TypeString(rt.PicEnd())
	rt.Emit('\n')
	return nil
}
