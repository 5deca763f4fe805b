package forthrt

// State returns the interpreter state flag; zero means interpreting.
func (rt *Runtime) State() Cell { return rt.state }

// SetState sets the interpreter state flag.
func (rt *Runtime) SetState(state Cell) { rt.state = state }

// Base returns the current numeric base.
func (rt *Runtime) Base() int { return rt.base }

// SetBase sets the numeric base used for pictured output and number
// parsing. Bases outside 2..36 are refused with an error wrapping
// ErrInvalidBase.
func (rt *Runtime) SetBase(base int) error {
	if !validBase(base) {
		return baseError(base)
	}
	rt.logf("#", "base %v", base)
	rt.base = base
	return nil
}

// Decimal sets the base to 10 (DECIMAL).
func (rt *Runtime) Decimal() { rt.base = 10 }

// Hex sets the base to 16 (HEX).
func (rt *Runtime) Hex() { rt.base = 16 }

// Pad returns the PAD scratch buffer. Its contents are entirely up to the
// program; it is never cleared or resized.
func (rt *Runtime) Pad() []byte { return rt.pad }

func validBase(base int) bool { return 2 <= base && base <= 36 }
