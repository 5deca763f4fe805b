package forthrt

import "strings"

// ToDigit converts a digit character to its value: '0'-'9' are 0-9, and
// letters of either case are 10-35. Whether the value is valid under any
// particular base is for the caller to decide.
func ToDigit(ch byte) (int, error) {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0'), nil
	case 'A' <= ch && ch <= 'Z':
		return int(ch-'A') + 10, nil
	case 'a' <= ch && ch <= 'z':
		return int(ch-'a') + 10, nil
	}
	return 0, InvalidDigitError{Char: ch}
}

// DigitIn converts a digit character to its value under base.
func DigitIn(ch byte, base int) (int, error) {
	dig, err := ToDigit(ch)
	if err == nil && dig >= base {
		err = InvalidDigitError{ch, base}
	}
	return dig, err
}

// Digit converts a digit character to its value under the current base.
func (rt *Runtime) Digit(ch byte) (int, error) { return DigitIn(ch, rt.base) }

// ToNumber accumulates the leading digits of s into ud, in the current base,
// returning the result and the unconverted rest of s (>NUMBER). Overflow wraps.
func (rt *Runtime) ToNumber(ud UDCell, s []byte) (UDCell, []byte) {
	return toNumber(ud, s, rt.base)
}

func toNumber(ud UDCell, s []byte, base int) (UDCell, []byte) {
	for len(s) > 0 {
		dig, err := DigitIn(s[0], base)
		if err != nil {
			break
		}
		ud = ud*UDCell(base) + UDCell(dig)
		s = s[1:]
	}
	return ud, s
}

// ParseNumber recognizes a number token: an optional base prefix (# decimal,
// $ hex, % binary), an optional minus sign, at least one digit, and an
// optional trailing '.' making it a double cell number. Without a prefix the
// current base applies. A single cell number is the low half of the result.
func (rt *Runtime) ParseNumber(token string) (n DCell, double bool, err error) {
	base, s := rt.base, token
	if len(s) > 0 {
		switch s[0] {
		case '#':
			base, s = 10, s[1:]
		case '$':
			base, s = 16, s[1:]
		case '%':
			base, s = 2, s[1:]
		}
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if double = strings.HasSuffix(s, "."); double {
		s = s[:len(s)-1]
	}
	if s == "" {
		return 0, false, NumberError{Token: token}
	}

	ud, rest := toNumber(0, []byte(s), base)
	if len(rest) > 0 {
		_, err := DigitIn(rest[0], base)
		return 0, false, NumberError{token, err}
	}
	if n = DCell(ud); neg {
		n = -n
	}
	return n, double, nil
}
