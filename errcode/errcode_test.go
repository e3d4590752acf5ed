package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("i2c nack")
	type C struct {
		err  error
		want Code
	}
	for _, c := range []C{
		{nil, OK},
		{BufferFull, BufferFull},
		{fmt.Errorf("write: %w", InvalidValue), InvalidValue},
		{Wrap(NotReady, "mcp9808.read", cause), NotReady},
		{fmt.Errorf("tick: %w", Wrap(WrongDevice, "probe", nil)), WrongDevice},
		{cause, Error},
		{&E{C: InvalidParams, Err: BufferFull}, InvalidParams},
		{fmt.Errorf("load: %w", &E{C: Timeout, Err: Wrap(NotReady, "probe", nil)}), Timeout},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestEFormattingAndUnwrap(t *testing.T) {
	cause := errors.New("short read")
	err := Wrap(BufferFull, "telemetry", cause)
	if got, want := err.Error(), "telemetry: buffer_full: short read"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(cause) should hold")
	}
	if !errors.Is(err, BufferFull) {
		t.Fatalf("errors.Is(BufferFull) should hold")
	}
	if errors.Is(err, InvalidValue) {
		t.Fatalf("errors.Is(InvalidValue) should not hold")
	}
	if got := (&E{C: Timeout}).Error(); got != "timeout" {
		t.Fatalf("bare E Error() = %q", got)
	}
}
