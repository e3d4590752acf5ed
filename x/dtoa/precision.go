package dtoa

import "mxchip-go/x/mathx"

// Mode selects how the fractional part is shaped.
type Mode uint8

const (
	// Trim accepts the producer's rounded, zero-trimmed digits as they are.
	Trim Mode = iota
	// Pad appends zeros until exactly Digits fractional digits are present.
	Pad
)

func (m Mode) String() string {
	if m == Pad {
		return "pad"
	}
	return "trim"
}

// Precision is the number of fractional digits to target and how to treat
// digits the producer trimmed away. The sign of Digits is ignored.
type Precision struct {
	Mode   Mode
	Digits int
}

// AtMost rounds to n fractional digits and keeps the trimmed result.
func AtMost(n int) Precision { return Precision{Mode: Trim, Digits: mathx.Abs(n)} }

// Exactly rounds to n fractional digits and zero-pads to n.
func Exactly(n int) Precision { return Precision{Mode: Pad, Digits: mathx.Abs(n)} }

// Signed maps the sign-encoded form used by older callers: p >= 0 trims to
// at most p digits, p < 0 pads to exactly -p digits.
func Signed(p int) Precision {
	if p < 0 {
		return Exactly(p)
	}
	return AtMost(p)
}
