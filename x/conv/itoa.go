package conv

// PutInt writes the base-10 representation of n to the start of dst.
// Negative numbers get a leading '-'. Same contract as PutUint.
func PutInt(dst []byte, n int64) (int, bool) {
	if n >= 0 {
		return PutUint(dst, uint64(n), 0)
	}
	if len(dst) < 2 {
		return 0, false
	}
	// -n overflows for MinInt64; the uint64 conversion of the two's
	// complement still yields the right magnitude.
	k, ok := PutUint(dst[1:], uint64(-n), 0)
	if !ok {
		return 0, false
	}
	dst[0] = '-'
	return k + 1, true
}
