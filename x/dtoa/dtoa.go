// Package dtoa renders float64 sensor readings as plain decimal strings
// into fixed-capacity buffers, for targets without a dependable printf %f.
//
// The digits themselves come from a Producer (a correctly rounding
// double-to-decimal routine). The Formatter layers the precision policy on
// top of it:
//
//	Trim (AtMost(n))   "23.5" for 23.5, "23" for 23.0
//	Pad  (Exactly(n))  "23.50" for 23.5, "23.00" for 23.0
//
// Capacity always wins. The destination length is the capacity including a
// NUL terminator, nothing is written at or beyond it, and output degrades
// silently instead of failing:
//
//   - producer failure (value does not fit, NaN or Inf): empty string
//   - not enough room to pad: fewer fractional digits than requested
//
// Callers that need to detect degraded output inspect the result.
//
// Formatters hold no mutable state and may be shared between goroutines.
package dtoa

import (
	"math"

	"mxchip-go/x/mathx"
)

// Formatter applies a Precision policy to a Producer's digits.
type Formatter struct {
	p Producer
}

// New returns a Formatter over p. A nil p selects Strconv.
func New(p Producer) *Formatter {
	if p == nil {
		p = Strconv{}
	}
	return &Formatter{p: p}
}

// Default formats with Strconv.
var Default = New(Strconv{})

// Format stores v in dst (capacity len(dst), terminator included) and
// returns the characters written, without the terminator.
func (f *Formatter) Format(dst []byte, v float64, p Precision) []byte {
	b := NewBuffer(dst)
	f.FormatBuffer(&b, v, p)
	return b.Bytes()
}

// FormatSigned is Format with sign-encoded precision: p >= 0 trims, p < 0
// pads to exactly -p fractional digits.
func (f *Formatter) FormatSigned(dst []byte, v float64, p int) []byte {
	return f.Format(dst, v, Signed(p))
}

// FormatBuffer replaces the contents of b with v.
func (f *Formatter) FormatBuffer(b *Buffer, v float64, p Precision) {
	b.Reset()

	// Digits is a magnitude; Abs(MinInt) stays negative and means "all".
	want := mathx.Abs(p.Digits)
	if want < 0 {
		want = math.MaxInt
	}
	digits := mathx.Min(want, MaxDigits)
	span := b.free()
	n, ok := f.p.Produce(span, v, digits)
	if !ok || n < 0 || n > len(span) {
		b.Reset()
		return
	}
	b.commit(n)

	// Exactly(0) has no fractional part to pad; it must not grow a bare '.'.
	if p.Mode == Pad && want != 0 {
		pad(b, want)
	}
}

// pad appends a decimal point if missing and then zeros until want
// fractional digits are present or the buffer is full.
func pad(b *Buffer, want int) {
	have := 0
	if dot := b.IndexByte('.'); dot < 0 {
		if !b.Put('.') {
			return
		}
	} else {
		have = b.Len() - dot - 1
	}
	for ; have < want; have++ {
		if !b.Put('0') {
			return
		}
	}
}

// Format formats with the Default formatter and sign-encoded precision.
func Format(dst []byte, v float64, precision int) []byte {
	return Default.FormatSigned(dst, v, precision)
}

// String formats v into a scratch buffer of the given capacity.
func String(v float64, p Precision, capacity int) string {
	if capacity <= 0 {
		return ""
	}
	return string(Default.Format(make([]byte, capacity), v, p))
}
