package cell

import (
	"fmt"
	"strings"
)

const (
	// MinArity is the smallest number of values a Cells carrier may hold.
	MinArity = 2

	// MaxArity is the largest number of values a Cells carrier may hold.
	MaxArity = 20
)

// Cells carries between MinArity and MaxArity cells out of a single
// operation. It is a plain value: copies never share storage, and two
// carriers are == when they hold the same values in the same order.
type Cells struct {
	n  uint8
	vs [MaxArity]Cell
}

// Values builds a carrier from vs; it panics unless
// MinArity <= len(vs) <= MaxArity.
func Values(vs ...Cell) (c Cells) {
	if len(vs) < MinArity || len(vs) > MaxArity {
		panic(fmt.Sprintf("cell.Values: invalid arity %v", len(vs)))
	}
	c.n = uint8(copy(c.vs[:], vs))
	return c
}

// Len returns the carrier's arity.
func (c Cells) Len() int { return int(c.n) }

// At returns the i-th value, panicking if i is out of range.
func (c Cells) At(i int) Cell {
	if i < 0 || i >= int(c.n) {
		panic(fmt.Sprintf("cell.Cells.At: index %v out of range [0:%v]", i, c.n))
	}
	return c.vs[i]
}

// Slice returns a copy of the carried values.
func (c Cells) Slice() []Cell {
	vs := make([]Cell, c.n)
	copy(vs, c.vs[:c.n])
	return vs
}

func (c Cells) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c.vs[:c.n] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, int32(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
