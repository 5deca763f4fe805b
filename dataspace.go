package forthrt

import (
	"encoding/binary"

	"github.com/jcorbin/forthrt/cell"
)

// DataBase returns the address of the first data space byte.
func (rt *Runtime) DataBase() UCell { return rt.dataBase }

// DataSize returns the data space capacity in bytes.
func (rt *Runtime) DataSize() uint { return rt.dataSize }

func (rt *Runtime) dataEnd() uint64 { return uint64(rt.dataBase) + uint64(rt.dataSize) }

// FetchHere returns the data space high-water mark: the address of the next
// byte that RequestMemory will hand out.
func (rt *Runtime) FetchHere() UCell { return rt.here }

// SetHere resets the high-water mark, typically to a value saved earlier by
// FetchHere, reclaiming everything reserved since. The address must lie within
// the data space, or the Runtime halts; it is otherwise taken on trust.
func (rt *Runtime) SetHere(addr UCell) {
	if addr < rt.dataBase || uint64(addr) > rt.dataEnd() {
		rt.halt(AddrError{addr, 0, "set here"})
	}
	rt.logf("@", "here %v -> %v", rt.here, addr)
	rt.here = addr
}

// Unused returns the number of data space bytes not yet reserved (UNUSED).
func (rt *Runtime) Unused() UCell {
	return UCell(rt.dataEnd() - uint64(rt.here))
}

// RequestMemory reserves the next n bytes of data space for the caller, by
// advancing here past them (ALLOT). A negative n, or one exceeding the unused
// capacity, halts the Runtime with here unchanged.
func (rt *Runtime) RequestMemory(n Cell) {
	if n < 0 {
		rt.halt(NumericArgError{"request memory", int64(n)})
	}
	end := uint64(rt.here) + uint64(n)
	if end > rt.dataEnd() {
		rt.halt(dataOverflowError{rt.here, n, rt.Unused()})
	}
	rt.logf("+", "request %v @%v", n, rt.here)
	rt.here = UCell(end)
}

// Align reserves enough padding to make here cell aligned (ALIGN).
func (rt *Runtime) Align() {
	if pad := (cell.Size - rt.here%cell.Size) % cell.Size; pad > 0 {
		rt.RequestMemory(Cell(pad))
	}
}

// Comma reserves one cell of data space and stores x in it (,).
func (rt *Runtime) Comma(x Cell) {
	addr := rt.here
	rt.RequestMemory(cell.Size)
	rt.Store(addr, x)
}

// CComma reserves one byte of data space and stores c in it (C,).
func (rt *Runtime) CComma(c byte) {
	addr := rt.here
	rt.RequestMemory(1)
	rt.CStore(addr, c)
}

// TwoComma reserves two cells of data space and stores d in them (2,).
func (rt *Runtime) TwoComma(d DCell) {
	addr := rt.here
	rt.RequestMemory(2 * cell.Size)
	rt.TwoStore(addr, d)
}

// Fetch returns the cell stored at addr (@).
func (rt *Runtime) Fetch(addr UCell) Cell {
	var buf [cell.Size]byte
	rt.load(addr, buf[:], "fetch")
	return Cell(binary.LittleEndian.Uint32(buf[:]))
}

// Store stores x at addr (!).
func (rt *Runtime) Store(addr UCell, x Cell) {
	var buf [cell.Size]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(x))
	rt.stor(addr, "store", buf[:]...)
}

// CFetch returns the byte stored at addr (C@).
func (rt *Runtime) CFetch(addr UCell) byte {
	var buf [1]byte
	rt.load(addr, buf[:], "c fetch")
	return buf[0]
}

// CStore stores c at addr (C!).
func (rt *Runtime) CStore(addr UCell, c byte) {
	rt.stor(addr, "c store", c)
}

// TwoFetch returns the double cell stored at addr (2@): its high half is the
// cell at addr, its low half the cell after.
func (rt *Runtime) TwoFetch(addr UCell) DCell {
	high := rt.Fetch(addr)
	low := rt.Fetch(addr + cell.Size)
	return cell.Join(cell.Values(low, high))
}

// TwoStore stores d at addr in the layout read by TwoFetch (2!).
func (rt *Runtime) TwoStore(addr UCell, d DCell) {
	halves := cell.Split(d)
	rt.Store(addr, halves.At(1))
	rt.Store(addr+cell.Size, halves.At(0))
}

// Bytes returns a copy of n bytes of data space starting at addr.
func (rt *Runtime) Bytes(addr UCell, n uint) []byte {
	buf := make([]byte, n)
	rt.load(addr, buf, "read")
	return buf
}

// Move copies n bytes from src to dst; the ranges may overlap (MOVE).
func (rt *Runtime) Move(src, dst UCell, n uint) {
	if n == 0 {
		return
	}
	rt.stor(dst, "move", rt.Bytes(src, n)...)
}

// Fill stores n copies of c starting at addr (FILL).
func (rt *Runtime) Fill(addr UCell, n uint, c byte) {
	if n == 0 {
		return
	}
	if err := rt.data.Fill(rt.checkAddr(addr, n, "fill"), n, c); err != nil {
		rt.halt(err)
	}
}

func (rt *Runtime) checkAddr(addr UCell, n uint, op string) uint {
	if addr < rt.dataBase || uint64(addr)+uint64(n) > rt.dataEnd() {
		rt.halt(AddrError{addr, n, op})
	}
	return uint(addr)
}

func (rt *Runtime) load(addr UCell, buf []byte, op string) {
	if err := rt.data.LoadInto(rt.checkAddr(addr, uint(len(buf)), op), buf); err != nil {
		rt.halt(err)
	}
}

func (rt *Runtime) stor(addr UCell, op string, values ...byte) {
	if err := rt.data.Stor(rt.checkAddr(addr, uint(len(values)), op), values...); err != nil {
		rt.halt(err)
	}
}
