package conv

// PutHex16 writes v as four upper-case hex digits without 0x.
func PutHex16(dst []byte, v uint16) (int, bool) {
	if len(dst) < 4 {
		return 0, false
	}
	const hexd = "0123456789ABCDEF"
	for j := 3; j >= 0; j-- {
		dst[j] = hexd[v&0xF]
		v >>= 4
	}
	return 4, true
}
