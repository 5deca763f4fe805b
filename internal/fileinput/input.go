// Package fileinput reads whitespace separated tokens from a queue of named
// input streams, tracking file and line locations for error reporting.
package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/forthrt/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	cur   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed. The end of
// any stream but the last reads as a 0 rune, separating their contents.
func (in *Input) ReadRune() (rune, int, error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, io.EOF
	}
	r, n, err := in.rr.ReadRune()
	if n > 0 {
		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}
	if err == io.EOF {
		in.closeIn()
		if len(in.Queue) > 0 {
			return 0, 0, nil
		}
	}
	return 0, 0, err
}

// Token scans the next whitespace separated token, returning it along with
// the location where it started. Returns io.EOF after the last token of the
// last queued stream.
func (in *Input) Token() (string, Location, error) {
	var sb strings.Builder
	var loc Location
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if sb.Len() > 0 && err == io.EOF {
				err = nil
			}
			return sb.String(), loc, err
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if sb.Len() > 0 {
				return sb.String(), loc, nil
			}
			continue
		}
		if sb.Len() == 0 {
			loc = in.Scan.Location
		}
		sb.WriteRune(r)
	}
}

// Close closes the current stream and any still queued, for those that
// implement io.Closer; the Input is then empty.
func (in *Input) Close() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur, in.rr = nil, nil
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.rr = runeio.NewReader(r)
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
