package forthrt

import "github.com/jcorbin/forthrt/cell"

// PicStart starts a pictured numeric output pass by emptying the buffer
// (<#). Characters added by a prior pass remain in the buffer but are no
// longer part of the picture.
func (rt *Runtime) PicStart() {
	rt.picIndex = len(rt.pic)
	rt.logf("#", "<#")
}

// PicAddChar prepends c to the picture (HOLD). Halts if the buffer is full.
func (rt *Runtime) PicAddChar(c byte) {
	if rt.picIndex <= 0 {
		rt.halt(ErrPicOverflow)
	}
	rt.picIndex--
	rt.pic[rt.picIndex] = c
}

// PicAddDigit prepends the character for dig: 0-9 then A-Z. Halts if dig is
// outside 0..35, or if the buffer is full.
func (rt *Runtime) PicAddDigit(dig int) {
	switch {
	case 0 <= dig && dig < 10:
		rt.PicAddChar('0' + byte(dig))
	case 10 <= dig && dig < 36:
		rt.PicAddChar('A' + byte(dig-10))
	default:
		rt.halt(NumericArgError{"pictured digit", int64(dig)})
	}
}

// PicHold is PicAddChar by its Forth name.
func (rt *Runtime) PicHold(c byte) { rt.PicAddChar(c) }

// PicHolds prepends s to the picture, so that it reads in order (HOLDS).
func (rt *Runtime) PicHolds(s string) {
	for i := len(s) - 1; i >= 0; i-- {
		rt.PicAddChar(s[i])
	}
}

// PicSign prepends a minus sign if n is negative (SIGN).
func (rt *Runtime) PicSign(n Cell) {
	if n < 0 {
		rt.PicAddChar('-')
	}
}

// PicDigit prepends the least significant digit of ud in the current base,
// returning the remaining quotient (#).
func (rt *Runtime) PicDigit(ud UDCell) UDCell {
	base := UDCell(rt.base)
	rt.PicAddDigit(int(ud % base))
	return ud / base
}

// PicDigits prepends all the digits of ud, at least one, returning zero (#S).
func (rt *Runtime) PicDigits(ud UDCell) UDCell {
	for {
		if ud = rt.PicDigit(ud); ud == 0 {
			return 0
		}
	}
}

// PicEnd returns the picture built since PicStart (#>).
func (rt *Runtime) PicEnd() string {
	rt.logf("#", "#> %q", rt.pic[rt.picIndex:])
	return string(rt.pic[rt.picIndex:])
}

// PicIndex returns the position of the first picture character in the
// buffer; it is the buffer capacity when the picture is empty.
func (rt *Runtime) PicIndex() int { return rt.picIndex }

// PicLen returns the number of characters in the picture.
func (rt *Runtime) PicLen() int { return len(rt.pic) - rt.picIndex }

// FormatUDCell renders ud in the current base.
func (rt *Runtime) FormatUDCell(ud UDCell) string {
	rt.PicStart()
	rt.PicDigits(ud)
	return rt.PicEnd()
}

// FormatDCell renders d in the current base, with a leading minus sign if
// negative.
func (rt *Runtime) FormatDCell(d DCell) string {
	rt.PicStart()
	rt.PicDigits(UDCell(cell.DAbs(d)))
	rt.PicSign(cell.HighHalf(d))
	return rt.PicEnd()
}

// FormatCell renders n in the current base.
func (rt *Runtime) FormatCell(n Cell) string { return rt.FormatDCell(DCell(n)) }

// FormatUnsigned renders u in the current base.
func (rt *Runtime) FormatUnsigned(u UCell) string { return rt.FormatUDCell(UDCell(u)) }
