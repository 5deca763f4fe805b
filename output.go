package forthrt

import (
	"io"
	"strings"

	"github.com/jcorbin/forthrt/internal/runeio"
)

// Emit writes one character to the output (EMIT).
func (rt *Runtime) Emit(r rune) {
	if _, err := runeio.WriteANSIRune(rt.out, r); err != nil {
		rt.halt(outputError{err})
	}
}

// Type writes n bytes of data space starting at addr to the output (TYPE).
// Nothing is written when n is not positive.
func (rt *Runtime) Type(addr UCell, n Cell) {
	if n > 0 {
		rt.write(rt.Bytes(addr, uint(n)))
	}
}

// TypeString writes s to the output.
func (rt *Runtime) TypeString(s string) {
	if _, err := io.WriteString(rt.out, s); err != nil {
		rt.halt(outputError{err})
	}
}

// Flush flushes any buffered output.
func (rt *Runtime) Flush() error {
	if err := rt.out.Flush(); err != nil {
		return outputError{err}
	}
	return nil
}

func (rt *Runtime) write(p []byte) {
	if _, err := rt.out.Write(p); err != nil {
		rt.halt(outputError{err})
	}
}

// Dot writes n in the current base followed by a space (.).
func (rt *Runtime) Dot(n Cell) {
	rt.TypeString(rt.FormatCell(n))
	rt.Emit(' ')
}

// UDot writes u in the current base followed by a space (U.).
func (rt *Runtime) UDot(u UCell) {
	rt.TypeString(rt.FormatUnsigned(u))
	rt.Emit(' ')
}

// DDot writes d in the current base followed by a space (D.).
func (rt *Runtime) DDot(d DCell) {
	rt.TypeString(rt.FormatDCell(d))
	rt.Emit(' ')
}

// DotR writes n right aligned in a field of width characters (.R).
func (rt *Runtime) DotR(n Cell, width Cell) { rt.typeRight(rt.FormatCell(n), width) }

// UDotR writes u right aligned in a field of width characters (U.R).
func (rt *Runtime) UDotR(u UCell, width Cell) { rt.typeRight(rt.FormatUnsigned(u), width) }

func (rt *Runtime) typeRight(s string, width Cell) {
	if pad := int(width) - len(s); pad > 0 {
		rt.TypeString(strings.Repeat(" ", pad))
	}
	rt.TypeString(s)
}
