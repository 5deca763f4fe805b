package forthrt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Dump writes a human readable description of the Runtime to w: its state,
// base, data space bounds, allocated pages and reserved contents, and pictured
// output buffer.
// Rows of reserved data space that are entirely zero are elided.
func (rt *Runtime) Dump(w io.Writer) error {
	dump := rtDumper{rt: rt, out: w}
	return dump.dump()
}

const dumpRowSize = 16

type rtDumper struct {
	rt  *Runtime
	out io.Writer
	buf bytes.Buffer

	addrWidth int
}

func (dump *rtDumper) dump() error {
	rt := dump.rt
	fmt.Fprintf(&dump.buf, "# Runtime Dump\n")
	fmt.Fprintf(&dump.buf, "  state: %v\n", rt.state)
	fmt.Fprintf(&dump.buf, "  base: %v\n", rt.base)
	fmt.Fprintf(&dump.buf, "  here: %v unused: %v\n", rt.here, rt.Unused())
	dump.dumpData()
	dump.dumpPic()
	_, err := dump.buf.WriteTo(dump.out)
	return err
}

func (dump *rtDumper) dumpData() {
	rt := dump.rt
	fmt.Fprintf(&dump.buf, "# Data Space @%v size %v pages %v\n", rt.dataBase, rt.dataSize, rt.data.Pages())

	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.FormatUint(rt.dataEnd(), 16))
	}

	var row [dumpRowSize]byte
	elided := false
	for addr := uint64(rt.dataBase); addr < uint64(rt.here); addr += dumpRowSize {
		n := uint64(rt.here) - addr
		if n > dumpRowSize {
			n = dumpRowSize
		}
		// loaded directly to keep Dump from halting
		if err := rt.data.LoadInto(uint(addr), row[:n]); err != nil {
			fmt.Fprintf(&dump.buf, "  @%0*x %v\n", dump.addrWidth, addr, err)
			return
		}
		if isZero(row[:n]) {
			if !elided {
				dump.buf.WriteString("  *\n")
				elided = true
			}
			continue
		}
		elided = false
		fmt.Fprintf(&dump.buf, "  @%0*x % x\n", dump.addrWidth, addr, row[:n])
	}
}

func (dump *rtDumper) dumpPic() {
	rt := dump.rt
	fmt.Fprintf(&dump.buf, "# Pictured Output %v/%v\n", rt.PicLen(), len(rt.pic))
	if rt.PicLen() > 0 {
		fmt.Fprintf(&dump.buf, "  %q\n", rt.pic[rt.picIndex:])
	}
}

func isZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}
