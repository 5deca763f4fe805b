package cell

import (
	"errors"
	"math"
)

var (
	// ErrDivideByZero is returned by the division words for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")

	// ErrQuotientOverflow is returned when a quotient does not fit in a
	// single cell.
	ErrQuotientOverflow = errors.New("quotient out of range")
)

// Split returns the halves of d in stack order: low half first, high half
// second, as a double cell is laid out on a Forth data stack.
func Split(d DCell) Cells { return Values(LowHalf(d), HighHalf(d)) }

// Join is the inverse of Split.
func Join(c Cells) DCell {
	return DCell(MakeDCell(UCell(c.At(1)), UCell(c.At(0))))
}

// DNegate returns -d.
func DNegate(d DCell) DCell { return -d }

// DAbs returns the absolute value of d; the most negative double cell is
// returned as is.
func DAbs(d DCell) DCell {
	if d < 0 {
		return -d
	}
	return d
}

// UMStar multiplies two unsigned cells into an unsigned double cell (UM*).
func UMStar(a, b UCell) UDCell { return UDCell(a) * UDCell(b) }

// MStar multiplies two signed cells into a signed double cell (M*).
func MStar(a, b Cell) DCell { return DCell(a) * DCell(b) }

// UMSlashMod divides ud by u, returning remainder and quotient (UM/MOD).
func UMSlashMod(ud UDCell, u UCell) (rem, quot UCell, err error) {
	if u == 0 {
		return 0, 0, ErrDivideByZero
	}
	q := ud / UDCell(u)
	if q > math.MaxUint32 {
		return 0, 0, ErrQuotientOverflow
	}
	return UCell(ud % UDCell(u)), UCell(q), nil
}

// SMSlashRem divides d by n with a quotient truncated toward zero (SM/REM).
func SMSlashRem(d DCell, n Cell) (rem, quot Cell, err error) {
	if n == 0 {
		return 0, 0, ErrDivideByZero
	}
	q, r := d/DCell(n), d%DCell(n)
	if q < math.MinInt32 || q > math.MaxInt32 {
		return 0, 0, ErrQuotientOverflow
	}
	return Cell(r), Cell(q), nil
}

// FMSlashMod divides d by n with a floored quotient (FM/MOD).
func FMSlashMod(d DCell, n Cell) (rem, quot Cell, err error) {
	if n == 0 {
		return 0, 0, ErrDivideByZero
	}
	q, r := d/DCell(n), d%DCell(n)
	if r != 0 && (r < 0) != (n < 0) {
		q--
		r += DCell(n)
	}
	if q < math.MinInt32 || q > math.MaxInt32 {
		return 0, 0, ErrQuotientOverflow
	}
	return Cell(r), Cell(q), nil
}
