package dtoa

import (
	"math"
	"strconv"

	"mxchip-go/x/mathx"
)

// MaxDigits caps the fractional digits requested from a Producer. Pad mode
// may still zero-fill beyond it.
const MaxDigits = 15

// Producer writes the decimal form of v into dst: an optional '-', integer
// digits, and at most digits fractional digits after a '.', correctly rounded,
// with trailing zeros and a bare trailing '.' removed. It returns the number
// of bytes written, or ok=false if the text does not fit in dst or v is not
// finite. Values that round to zero are written as "0".
type Producer interface {
	Produce(dst []byte, v float64, digits int) (n int, ok bool)
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc func(dst []byte, v float64, digits int) (int, bool)

func (f ProducerFunc) Produce(dst []byte, v float64, digits int) (int, bool) {
	return f(dst, v, digits)
}

// Strconv rounds the exact binary value half-to-even via strconv. 2.675 is
// stored as 2.67499999... and so renders as "2.67" at two digits.
type Strconv struct{}

func (Strconv) Produce(dst []byte, v float64, digits int) (int, bool) {
	if !finite(v) {
		return 0, false
	}
	var scratch [48]byte
	s := strconv.AppendFloat(scratch[:0], v, 'f', mathx.Clamp(digits, 0, MaxDigits), 64)
	return emit(dst, canonical(s))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// canonical trims trailing fractional zeros and a bare '.', and drops the
// sign of a zero result.
func canonical(s []byte) []byte {
	dot := -1
	for i, c := range s {
		if c == '.' {
			dot = i
			break
		}
	}
	if dot >= 0 {
		end := len(s)
		for end > dot+1 && s[end-1] == '0' {
			end--
		}
		if end == dot+1 {
			end = dot
		}
		s = s[:end]
	}
	if len(s) == 2 && s[0] == '-' && s[1] == '0' {
		s = s[1:]
	}
	return s
}

func emit(dst, s []byte) (int, bool) {
	if len(s) > len(dst) {
		return 0, false
	}
	return copy(dst, s), true
}
