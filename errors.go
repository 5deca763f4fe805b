package forthrt

import (
	"errors"
	"fmt"

	"github.com/jcorbin/forthrt/cell"
	"github.com/jcorbin/forthrt/internal/mem"
)

var (
	// ErrDataSpaceOverflow is the cause of a halt when a data space request
	// exceeds the remaining capacity.
	ErrDataSpaceOverflow = errors.New("data space overflow")

	// ErrPicOverflow is the cause of a halt when a character is added to a
	// full pictured numeric output buffer.
	ErrPicOverflow = errors.New("pictured numeric output string overflow")

	// ErrInvalidBase is returned when setting a numeric base outside 2..36.
	ErrInvalidBase = errors.New("unsupported base")
)

// Standard Forth THROW codes for the errors of this package.
const (
	ThrowAbort             = -1
	ThrowDataSpaceOverflow = -8
	ThrowInvalidAddress    = -9
	ThrowDivideByZero      = -10
	ThrowOutOfRange        = -11
	ThrowUndefinedWord     = -13
	ThrowPicOverflow       = -17
	ThrowInvalidNumericArg = -24
	ThrowCharIO            = -57
	ThrowUnsupportedBase   = -256
)

// ThrowCode maps err to the Forth THROW code that a translated program's
// CATCH would see: 0 for nil, ThrowAbort for anything unrecognized.
func ThrowCode(err error) int {
	var (
		addrErr  AddrError
		argErr   NumericArgError
		digitErr InvalidDigitError
		numErr   NumberError
		outErr   outputError
	)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDataSpaceOverflow):
		return ThrowDataSpaceOverflow
	case errors.Is(err, ErrPicOverflow):
		return ThrowPicOverflow
	case errors.Is(err, ErrInvalidBase):
		return ThrowUnsupportedBase
	case errors.Is(err, cell.ErrDivideByZero):
		return ThrowDivideByZero
	case errors.Is(err, cell.ErrQuotientOverflow):
		return ThrowOutOfRange
	case errors.As(err, &numErr):
		return ThrowUndefinedWord
	case errors.As(err, &addrErr):
		return ThrowInvalidAddress
	case errors.As(err, &argErr), errors.As(err, &digitErr):
		return ThrowInvalidNumericArg
	case errors.As(err, &outErr):
		return ThrowCharIO
	}
	var limErr mem.LimitError
	if errors.As(err, &limErr) {
		return ThrowInvalidAddress
	}
	return ThrowAbort
}

// AddrError is the cause of a halt when a data space access, or a reset of
// here, falls outside the data space.
type AddrError struct {
	Addr UCell
	N    uint
	Op   string
}

func (err AddrError) Error() string {
	if err.N > 1 {
		return fmt.Sprintf("invalid memory address: %v of %v bytes @%v", err.Op, err.N, err.Addr)
	}
	return fmt.Sprintf("invalid memory address: %v @%v", err.Op, err.Addr)
}

// NumericArgError is the cause of a halt when an operation is given a number
// outside of its domain, like a negative data space request.
type NumericArgError struct {
	Op    string
	Value int64
}

func (err NumericArgError) Error() string {
	return fmt.Sprintf("invalid numeric argument %v to %v", err.Value, err.Op)
}

// InvalidDigitError is returned when a character is not a digit; Base is 0
// when the character is not a digit in any base.
type InvalidDigitError struct {
	Char byte
	Base int
}

func (err InvalidDigitError) Error() string {
	if err.Base == 0 {
		return fmt.Sprintf("invalid digit %q", err.Char)
	}
	return fmt.Sprintf("invalid digit %q in base %v", err.Char, err.Base)
}

// NumberError is returned when a token is not a number.
type NumberError struct {
	Token string
	Err   error
}

func (err NumberError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid number %q: %v", err.Token, err.Err)
	}
	return fmt.Sprintf("invalid number %q", err.Token)
}

func (err NumberError) Unwrap() error { return err.Err }

type dataOverflowError struct {
	here   UCell
	n      Cell
	unused UCell
}

func (err dataOverflowError) Error() string {
	return fmt.Sprintf("data space overflow: requested %v bytes @%v with %v unused", err.n, err.here, err.unused)
}

func (err dataOverflowError) Unwrap() error { return ErrDataSpaceOverflow }

type baseError int

func (base baseError) Error() string { return fmt.Sprintf("unsupported base %v", int(base)) }
func (base baseError) Unwrap() error { return ErrInvalidBase }

type outputError struct{ error }

func (err outputError) Error() string { return fmt.Sprintf("output failed: %v", err.error) }
func (err outputError) Unwrap() error { return err.error }
