package conv

// PutUint writes the base-10 representation of n to the start of dst,
// left-padded with zeros to at least width digits. It returns the number of
// bytes written. Nothing is written and ok is false when dst is too short.
// No allocations; no fmt/strconv dependency.
func PutUint(dst []byte, n uint64, width int) (int, bool) {
	var tmp [20]byte // max uint64 is 20 digits
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	digits := len(tmp) - i
	pad := 0
	if width > digits {
		pad = width - digits
	}
	if pad+digits > len(dst) {
		return 0, false
	}
	for j := 0; j < pad; j++ {
		dst[j] = '0'
	}
	copy(dst[pad:], tmp[i:])
	return pad + digits, true
}
