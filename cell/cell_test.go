package cell_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/jcorbin/forthrt/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCells = []cell.Cell{
	0, 1, -1, 2, -2, 42, -42, 0x7fff, 0x8000, 0xffff, 0x10000,
	0x12345678, -0x12345678, math.MaxInt32, math.MinInt32, math.MaxInt32 - 1, math.MinInt32 + 1,
}

func Test_highHalf_roundTrip(t *testing.T) {
	for _, x := range sampleCells {
		assert.Equal(t, x, cell.HighHalf(cell.MakeHigh(x)), "HighHalf(MakeHigh(%v))", x)
		assert.Equal(t, cell.Cell(0), cell.LowHalf(cell.MakeHigh(x)), "LowHalf(MakeHigh(%v))", x)

		u := cell.UCell(x)
		assert.Equal(t, u, cell.UHighHalf(cell.UMakeHigh(u)), "UHighHalf(UMakeHigh(%v))", u)
		assert.Equal(t, cell.UCell(0), cell.ULowHalf(cell.UMakeHigh(u)), "ULowHalf(UMakeHigh(%v))", u)
	}
}

func Test_makeHigh_signExtends(t *testing.T) {
	assert.Equal(t, cell.DCell(-1<<32), cell.MakeHigh(-1))
	assert.Equal(t, cell.UDCell(0xffffffff00000000), cell.UMakeHigh(0xffffffff))
	assert.Equal(t, cell.Cell(-1), cell.HighHalf(-1), "arithmetic shift keeps the sign")
	assert.Equal(t, cell.UCell(0xffffffff), cell.UHighHalf(math.MaxUint64), "logical shift fills with zero")
	assert.Equal(t, cell.UCell(0), cell.UHighHalf(0xffffffff))
}

func Test_lowHalf(t *testing.T) {
	for _, tc := range []struct {
		d    cell.DCell
		low  cell.Cell
		ulow cell.UCell
	}{
		{0, 0, 0},
		{1, 1, 1},
		{-1, -1, 0xffffffff},
		{0x7fffffff, math.MaxInt32, 0x7fffffff},
		// bit W-1 of the low half set: signed view sign extends, unsigned does not
		{0x80000000, math.MinInt32, 0x80000000},
		{0x1_80000000, math.MinInt32, 0x80000000},
		{0x7fffffff_ffffffff, -1, 0xffffffff},
		{-0x1_00000000, 0, 0},
		{0x12345678_9abcdef0, -0x65432110, 0x9abcdef0},
		{math.MinInt64, 0, 0},
	} {
		t.Run(fmt.Sprintf("%#x", uint64(tc.d)), func(t *testing.T) {
			assert.Equal(t, tc.low, cell.LowHalf(tc.d), "LowHalf")
			assert.Equal(t, tc.ulow, cell.ULowHalf(cell.UDCell(tc.d)), "ULowHalf")

			// the shift pair agrees with plain truncation in both views
			assert.Equal(t, cell.Cell(int32(tc.d)), cell.LowHalf(tc.d), "LowHalf vs truncation")
			assert.Equal(t, cell.UCell(uint32(tc.d)), cell.ULowHalf(cell.UDCell(tc.d)), "ULowHalf vs mask")
			assert.Equal(t, cell.UCell(cell.LowHalf(tc.d)), cell.ULowHalf(cell.UDCell(tc.d)), "same bits")
		})
	}
}

func Test_makeDCell(t *testing.T) {
	for _, high := range sampleCells {
		for _, low := range sampleCells {
			ud := cell.MakeDCell(cell.UCell(high), cell.UCell(low))
			require.Equal(t, ud, cell.MakeUDCell(cell.UCell(high), cell.UCell(low)))

			d := cell.DCell(ud)
			require.Equal(t, high, cell.HighHalf(d), "high half of (%v, %v)", high, low)
			require.Equal(t, low, cell.LowHalf(d), "low half of (%v, %v)", high, low)
			require.Equal(t, cell.UCell(high), cell.UHighHalf(ud))
			require.Equal(t, cell.UCell(low), cell.ULowHalf(ud))
		}
	}
}

func Test_makeDCellBits_unmaskedLow(t *testing.T) {
	// in contract: agrees with MakeDCell
	assert.Equal(t, cell.MakeDCell(7, 0x80000000), cell.MakeDCellBits(7, 0x80000000))

	// out of contract: low bits above W-1 are OR-ed into the high half
	ud := cell.MakeDCellBits(2, 0x1_00000005)
	assert.Equal(t, cell.UCell(3), cell.UHighHalf(ud), "high half is polluted")
	assert.Equal(t, cell.UCell(5), cell.ULowHalf(ud), "low half survives")
}

func Test_align(t *testing.T) {
	for addr := cell.UCell(0); addr < 64; addr++ {
		a := cell.Align(addr)
		require.Equal(t, cell.UCell(0), a%cell.Size, "Align(%v) must be aligned", addr)
		require.True(t, a >= addr && a-addr < cell.Size, "Align(%v) = %v must be within a cell", addr, a)
		require.True(t, cell.Aligned(a))
		if cell.Aligned(addr) {
			require.Equal(t, addr, a, "aligned addresses are unchanged")
		}
	}
	assert.Equal(t, cell.UCell(4), cell.Align(1))
	assert.Equal(t, cell.UCell(8), cell.Align(5))
	assert.Equal(t, cell.UCell(0x1000), cell.Align(0xffd))
	assert.Equal(t, cell.UCell(0xfffffffc), cell.Align(0xfffffffc))
}

func Test_split(t *testing.T) {
	for _, d := range []cell.DCell{0, 1, -1, math.MaxInt64, math.MinInt64, 0x12345678_9abcdef0, -0x80000000} {
		c := cell.Split(d)
		require.Equal(t, 2, c.Len())
		require.Equal(t, cell.LowHalf(d), c.At(0), "low half first")
		require.Equal(t, cell.HighHalf(d), c.At(1), "high half on top")
		require.Equal(t, d, cell.Join(c), "Join(Split(%v))", d)
	}
	assert.Equal(t, cell.Values(-1, -1), cell.Split(-1))
	assert.Equal(t, cell.Values(math.MinInt32, 0), cell.Split(0x80000000))
}

func Test_mixedArith(t *testing.T) {
	assert.Equal(t, cell.UDCell(0xfffffffe_00000001), cell.UMStar(0xffffffff, 0xffffffff))
	assert.Equal(t, cell.DCell(-6), cell.MStar(-2, 3))
	assert.Equal(t, cell.DCell(math.MinInt32)*math.MinInt32, cell.MStar(math.MinInt32, math.MinInt32))
	assert.Equal(t, cell.DCell(5), cell.DAbs(-5))
	assert.Equal(t, cell.DCell(-5), cell.DNegate(5))

	t.Run("UM/MOD", func(t *testing.T) {
		rem, quot, err := cell.UMSlashMod(10, 3)
		require.NoError(t, err)
		assert.Equal(t, cell.UCell(1), rem)
		assert.Equal(t, cell.UCell(3), quot)

		rem, quot, err = cell.UMSlashMod(cell.UMStar(0xffffffff, 0xfffffff0)+7, 0xffffffff)
		require.NoError(t, err)
		assert.Equal(t, cell.UCell(7), rem)
		assert.Equal(t, cell.UCell(0xfffffff0), quot)

		_, _, err = cell.UMSlashMod(1<<40, 2)
		assert.Equal(t, cell.ErrQuotientOverflow, err)
		_, _, err = cell.UMSlashMod(1, 0)
		assert.Equal(t, cell.ErrDivideByZero, err)
	})

	for _, tc := range []struct {
		name      string
		div       func(cell.DCell, cell.Cell) (cell.Cell, cell.Cell, error)
		d         cell.DCell
		n         cell.Cell
		rem, quot cell.Cell
		err       error
	}{
		{"SM/REM 7 2", cell.SMSlashRem, 7, 2, 1, 3, nil},
		{"SM/REM -7 2", cell.SMSlashRem, -7, 2, -1, -3, nil},
		{"SM/REM 7 -2", cell.SMSlashRem, 7, -2, 1, -3, nil},
		{"SM/REM -7 -2", cell.SMSlashRem, -7, -2, -1, 3, nil},
		{"SM/REM zero", cell.SMSlashRem, 7, 0, 0, 0, cell.ErrDivideByZero},
		{"SM/REM overflow", cell.SMSlashRem, 1 << 40, 2, 0, 0, cell.ErrQuotientOverflow},
		{"SM/REM min/-1", cell.SMSlashRem, math.MinInt64, -1, 0, 0, cell.ErrQuotientOverflow},
		{"FM/MOD 7 2", cell.FMSlashMod, 7, 2, 1, 3, nil},
		{"FM/MOD -7 2", cell.FMSlashMod, -7, 2, 1, -4, nil},
		{"FM/MOD 7 -2", cell.FMSlashMod, 7, -2, -1, -4, nil},
		{"FM/MOD -7 -2", cell.FMSlashMod, -7, -2, -1, 3, nil},
		{"FM/MOD exact", cell.FMSlashMod, -8, 2, 0, -4, nil},
		{"FM/MOD zero", cell.FMSlashMod, 7, 0, 0, 0, cell.ErrDivideByZero},
		{"FM/MOD min/-1", cell.FMSlashMod, math.MinInt64, -1, 0, 0, cell.ErrQuotientOverflow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rem, quot, err := tc.div(tc.d, tc.n)
			if tc.err != nil {
				assert.Equal(t, tc.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rem, rem, "remainder")
			assert.Equal(t, tc.quot, quot, "quotient")
		})
	}
}
