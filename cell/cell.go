// Package cell implements the single and double cell numeric model: fixed
// width signed and unsigned integers, and the shift based conversions between
// a double cell and its two single cell halves.
package cell

// Bits is the width W of a single cell.
const Bits = 32

// Size is the number of address units (bytes) in a single cell.
const Size = Bits / 8

type (
	// Cell is a signed single cell.
	Cell int32

	// UCell is an unsigned single cell.
	UCell uint32

	// DCell is a signed double cell, the concatenation of a high and low Cell.
	DCell int64

	// UDCell is an unsigned double cell.
	UDCell uint64
)

// MakeHigh places x in the high half of a double cell, sign extended; the
// low half is zero.
func MakeHigh(x Cell) DCell { return DCell(x) << Bits }

// HighHalf returns the high half of d, using an arithmetic shift.
func HighHalf(d DCell) Cell { return Cell(d >> Bits) }

// LowHalf returns the low half of d, sign extended from bit W-1.
//
// It is computed as HighHalf(MakeHigh(d)) rather than by masking, so that
// truncation behaves exactly as a hardware shift pair would.
func LowHalf(d DCell) Cell { return HighHalf(MakeHigh(Cell(d))) }

// UMakeHigh places x in the high half of an unsigned double cell.
func UMakeHigh(x UCell) UDCell { return UDCell(x) << Bits }

// UHighHalf returns the high half of d, using a logical shift.
func UHighHalf(d UDCell) UCell { return UCell(d >> Bits) }

// ULowHalf returns the low half of d, computed by the same shift pair as
// LowHalf but zero filling.
func ULowHalf(d UDCell) UCell { return UHighHalf(UMakeHigh(UCell(d))) }

// MakeDCell composes a double cell from its high and low halves.
func MakeDCell(high, low UCell) UDCell { return UMakeHigh(high) | UDCell(low) }

// MakeUDCell is the unsigned twin of MakeDCell; the two compose identically.
func MakeUDCell(high, low UCell) UDCell { return UMakeHigh(high) | UDCell(low) }

// MakeDCellBits is MakeDCell with a double width low argument that is OR-ed
// in unmasked. Callers must pass a low value that fits in W bits; any higher
// bits bleed into the high half.
func MakeDCellBits(high UCell, low UDCell) UDCell { return UMakeHigh(high) | low }

// Align rounds addr up to the next multiple of Size.
func Align(addr UCell) UCell {
	if rem := addr % Size; rem != 0 {
		addr += Size - rem
	}
	return addr
}

// Aligned returns true if addr is a multiple of Size.
func Aligned(addr UCell) bool { return addr%Size == 0 }
