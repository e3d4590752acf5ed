package dtoa

import (
	"mxchip-go/x/conv"
	"mxchip-go/x/mathx"
)

// maxFixedDigits keeps 10^digits well inside the exact float64 range.
const maxFixedDigits = 9

// maxExact is 2^53; scaled values at or above it lose integer precision.
const maxExact = 1 << 53

var pow10 = [maxFixedDigits + 1]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// Fixed renders through one scaled multiply and integer digit writes, with
// no float printing. It rounds half away from zero on the scaled value, keeps
// at most 9 fractional digits and fails once |v|*10^digits reaches 2^53.
// Intended for MCU builds; prefer Strconv where code size allows.
type Fixed struct{}

func (Fixed) Produce(dst []byte, v float64, digits int) (int, bool) {
	if !finite(v) {
		return 0, false
	}
	digits = mathx.Clamp(digits, 0, maxFixedDigits)
	neg := v < 0
	if neg {
		v = -v
	}
	scale := pow10[digits]
	x := v*float64(scale) + 0.5
	if x >= maxExact {
		return 0, false
	}
	u := uint64(x)
	ip, fp := u/scale, u%scale
	for digits > 0 && fp%10 == 0 {
		fp /= 10
		digits--
	}

	n := 0
	if neg && u != 0 {
		if len(dst) < 1 {
			return 0, false
		}
		dst[0] = '-'
		n++
	}
	k, ok := conv.PutUint(dst[n:], ip, 0)
	if !ok {
		return 0, false
	}
	n += k
	if digits == 0 {
		return n, true
	}
	if n >= len(dst) {
		return 0, false
	}
	dst[n] = '.'
	n++
	k, ok = conv.PutUint(dst[n:], fp, digits)
	if !ok {
		return 0, false
	}
	return n + k, true
}
