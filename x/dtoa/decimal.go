package dtoa

import (
	"github.com/shopspring/decimal"

	"mxchip-go/x/mathx"
)

// Decimal rounds the shortest decimal form of v half away from zero, the way
// a person reading the value would: 2.675 renders as "2.68" at two digits.
type Decimal struct{}

func (Decimal) Produce(dst []byte, v float64, digits int) (int, bool) {
	if !finite(v) {
		return 0, false
	}
	d := decimal.NewFromFloat(v).Round(int32(mathx.Clamp(digits, 0, MaxDigits)))
	return emit(dst, canonical([]byte(d.String())))
}
