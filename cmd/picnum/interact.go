package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/forthrt"
	"github.com/jcorbin/forthrt/internal/fileinput"
)

const prompt = "picnum> "

// interact prompts for lines of numbers, converting each as it is entered.
// One Runtime serves the whole session; a line that halts it is reported,
// and the session goes on.
func interact(ctx context.Context, cv *converter, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	rt := cv.newRuntime(out)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		in := fileinput.Input{Queue: []io.Reader{
			namedReader{strings.NewReader(line), "<input>"},
		}}
		if err := cv.convertLine(ctx, rt, &in); err != nil {
			if ctx.Err() != nil {
				return err
			}
			cv.log.ErrorIf(err)
		}
	}
}

// convertLine converts one line of input, then reclaims the data space it
// used, even after a halt.
func (cv *converter) convertLine(ctx context.Context, rt *forthrt.Runtime, in *fileinput.Input) error {
	mark := rt.FetchHere()
	defer rt.SetHere(mark)
	return cv.convertAll(ctx, rt, in)
}
