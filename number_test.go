package forthrt_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jcorbin/forthrt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToDigit(t *testing.T) {
	for _, tc := range []struct {
		ch  byte
		dig int
	}{
		{'0', 0},
		{'9', 9},
		{'A', 10},
		{'F', 15},
		{'f', 15},
		{'Z', 35},
		{'z', 35},
	} {
		dig, err := forthrt.ToDigit(tc.ch)
		if assert.NoError(t, err, "ToDigit(%q)", tc.ch) {
			assert.Equal(t, tc.dig, dig, "ToDigit(%q)", tc.ch)
		}
	}

	for _, ch := range []byte(" !/:@[`{\x00\xff") {
		_, err := forthrt.ToDigit(ch)
		assert.Equal(t, forthrt.InvalidDigitError{Char: ch}, err, "ToDigit(%q)", ch)
	}
}

func Test_DigitIn(t *testing.T) {
	dig, err := forthrt.DigitIn('F', 16)
	assert.NoError(t, err)
	assert.Equal(t, 15, dig)

	for base := 2; base <= 16; base++ {
		_, err := forthrt.DigitIn('G', base)
		assert.Equal(t, forthrt.InvalidDigitError{Char: 'G', Base: base}, err)
	}
	_, err = forthrt.DigitIn('G', 16)
	assert.EqualError(t, err, `invalid digit 'G' in base 16`)

	dig, err = forthrt.DigitIn('g', 17)
	assert.NoError(t, err)
	assert.Equal(t, 16, dig)

	_, err = forthrt.DigitIn('2', 2)
	assert.Error(t, err)

	rt := forthrt.New(forthrt.WithBase(8))
	_, err = rt.Digit('8')
	assert.Error(t, err)
	dig, err = rt.Digit('7')
	assert.NoError(t, err)
	assert.Equal(t, 7, dig)
}

func Test_ToNumber(t *testing.T) {
	rt := forthrt.New()
	ud, rest := rt.ToNumber(0, []byte("123abc"))
	assert.Equal(t, forthrt.UDCell(123), ud)
	assert.Equal(t, "abc", string(rest))

	ud, rest = rt.ToNumber(1, []byte("2"))
	assert.Equal(t, forthrt.UDCell(12), ud, "accumulates into the given number")
	assert.Empty(t, rest)

	ud, rest = rt.ToNumber(5, nil)
	assert.Equal(t, forthrt.UDCell(5), ud)
	assert.Empty(t, rest)

	rt.Hex()
	ud, rest = rt.ToNumber(0, []byte("123abc"))
	assert.Equal(t, forthrt.UDCell(0x123abc), ud)
	assert.Empty(t, rest)

	ud, _ = rt.ToNumber(0, []byte("1FFFFFFFFFFFFFFFF"))
	assert.Equal(t, forthrt.UDCell(math.MaxUint64), ud, "overflow wraps")
}

func Test_ParseNumber(t *testing.T) {
	for _, tc := range []struct {
		base   int
		token  string
		n      forthrt.DCell
		double bool
	}{
		{10, "42", 42, false},
		{10, "-42", -42, false},
		{10, "0", 0, false},
		{10, "$FF", 255, false},
		{10, "$ff", 255, false},
		{10, "$-10", -16, false},
		{10, "%101", 5, false},
		{16, "ff", 255, false},
		{16, "#10", 10, false},
		{10, "123.", 123, true},
		{10, "-1.", -1, true},
		{10, "9223372036854775807.", math.MaxInt64, true},
		{10, "18446744073709551615.", -1, true},
		{36, "zz", 35*36 + 35, false},
	} {
		t.Run(fmt.Sprintf("%v in base %v", tc.token, tc.base), func(t *testing.T) {
			rt := forthrt.New(forthrt.WithBase(tc.base))
			n, double, err := rt.ParseNumber(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.n, n)
			assert.Equal(t, tc.double, double)
		})
	}

	rt := forthrt.New()
	for _, token := range []string{"", "-", "$", "#-", ".", "-.", "12G", "1 2", "$FG", "%102", "1.2."} {
		_, _, err := rt.ParseNumber(token)
		var numErr forthrt.NumberError
		if assert.True(t, errors.As(err, &numErr), "expected NumberError for %q, got %v", token, err) {
			assert.Equal(t, token, numErr.Token)
			assert.Equal(t, forthrt.ThrowUndefinedWord, forthrt.ThrowCode(err))
		}
	}

	_, _, err := rt.ParseNumber("12G")
	assert.EqualError(t, err, `invalid number "12G": invalid digit 'G' in base 10`)
	var digitErr forthrt.InvalidDigitError
	assert.True(t, errors.As(err, &digitErr))
	assert.Equal(t, forthrt.InvalidDigitError{Char: 'G', Base: 10}, digitErr)

	_, _, err = rt.ParseNumber("1 2")
	assert.EqualError(t, err, `invalid number "1 2": invalid digit ' '`)
}

func Test_base(t *testing.T) {
	rt := forthrt.New()
	assert.Equal(t, 10, rt.Base())
	rt.Hex()
	assert.Equal(t, 16, rt.Base())
	rt.Decimal()
	assert.Equal(t, 10, rt.Base())

	assert.NoError(t, rt.SetBase(36))
	assert.Equal(t, 36, rt.Base())
	for _, base := range []int{-1, 0, 1, 37} {
		err := rt.SetBase(base)
		assert.True(t, errors.Is(err, forthrt.ErrInvalidBase), "SetBase(%v) got %v", base, err)
		assert.Equal(t, forthrt.ThrowUnsupportedBase, forthrt.ThrowCode(err))
	}
	assert.Equal(t, 36, rt.Base(), "refused bases change nothing")

	assert.Equal(t, forthrt.Cell(0), rt.State())
	rt.SetState(-1)
	assert.Equal(t, forthrt.Cell(-1), rt.State())

	pad := rt.Pad()
	copy(pad, "scratch")
	assert.Equal(t, "scratch", string(rt.Pad()[:7]), "pad persists")
	assert.Len(t, forthrt.New(forthrt.WithPadSize(16)).Pad(), 16)
}
