package dtoa

// Buffer is a fixed-capacity, NUL-terminated byte sequence over caller
// storage. Capacity is len of the backing slice and counts the terminator, so
// at most Cap()-1 characters are ever stored. Every write is checked against
// that bound before it happens.
type Buffer struct {
	b []byte
	n int
}

// NewBuffer wraps b and stores the empty string in it.
func NewBuffer(b []byte) Buffer {
	buf := Buffer{b: b}
	buf.Reset()
	return buf
}

// Cap returns the capacity including the terminator.
func (b *Buffer) Cap() int { return len(b.b) }

// Len returns the number of stored characters.
func (b *Buffer) Len() int { return b.n }

// Room returns how many more characters fit.
func (b *Buffer) Room() int {
	if len(b.b) == 0 {
		return 0
	}
	return len(b.b) - 1 - b.n
}

// Reset stores the empty string.
func (b *Buffer) Reset() {
	b.n = 0
	b.terminate()
}

// Put appends c. It reports false, leaving the buffer untouched, when full.
func (b *Buffer) Put(c byte) bool {
	if b.Room() < 1 {
		return false
	}
	b.b[b.n] = c
	b.n++
	b.terminate()
	return true
}

// Bytes returns the stored characters without the terminator. The slice
// aliases the backing storage.
func (b *Buffer) Bytes() []byte { return b.b[:b.n] }

func (b *Buffer) String() string { return string(b.b[:b.n]) }

// IndexByte returns the position of the first c, or -1.
func (b *Buffer) IndexByte(c byte) int {
	for i := 0; i < b.n; i++ {
		if b.b[i] == c {
			return i
		}
	}
	return -1
}

// free returns the writable area past the stored characters, excluding the
// terminator slot.
func (b *Buffer) free() []byte {
	if len(b.b) == 0 {
		return nil
	}
	return b.b[b.n : len(b.b)-1]
}

// commit accounts for k bytes written into free(). k is trusted to be within
// Room(); callers check first.
func (b *Buffer) commit(k int) {
	b.n += k
	b.terminate()
}

func (b *Buffer) terminate() {
	if b.n < len(b.b) {
		b.b[b.n] = 0
	}
}
