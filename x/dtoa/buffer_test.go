package dtoa

import "testing"

func TestBufferBounds(t *testing.T) {
	raw := []byte("xxxx")
	b := NewBuffer(raw)
	if b.Cap() != 4 || b.Len() != 0 || b.Room() != 3 {
		t.Fatalf("new buffer cap/len/room = %d/%d/%d", b.Cap(), b.Len(), b.Room())
	}
	if raw[0] != 0 {
		t.Fatalf("new buffer not terminated")
	}
	for _, c := range []byte("abc") {
		if !b.Put(c) {
			t.Fatalf("Put(%q) failed with room %d", c, b.Room())
		}
	}
	if b.Put('d') {
		t.Fatalf("Put past capacity succeeded")
	}
	if got := b.String(); got != "abc" {
		t.Fatalf("String() = %q, want abc", got)
	}
	if raw[3] != 0 {
		t.Fatalf("terminator = %q, want NUL", raw[3])
	}
	if i := b.IndexByte('c'); i != 2 {
		t.Fatalf("IndexByte(c) = %d, want 2", i)
	}
	if i := b.IndexByte('z'); i != -1 {
		t.Fatalf("IndexByte(z) = %d, want -1", i)
	}
	b.Reset()
	if b.Len() != 0 || raw[0] != 0 {
		t.Fatalf("Reset left %q", raw)
	}
}

func TestBufferZeroCapacity(t *testing.T) {
	b := NewBuffer(nil)
	if b.Room() != 0 || b.Put('a') || len(b.free()) != 0 {
		t.Fatalf("zero-capacity buffer accepted data")
	}
	one := NewBuffer(make([]byte, 1))
	if one.Room() != 0 || one.Put('a') {
		t.Fatalf("capacity-1 buffer accepted data")
	}
}
