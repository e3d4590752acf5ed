package mcp9808

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"

	"mxchip-go/errcode"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// Register-file fake of an MCP9808.
type fakeI2C struct {
	regs   map[byte]uint16
	writes [][]byte
	fail   error
	addrs  []uint16
}

func newFakeMCP9808(ambient uint16) *fakeI2C {
	return &fakeI2C{regs: map[byte]uint16{
		regConfig:     0x0000,
		regAmbient:    ambient,
		regManufactID: 0x0054,
		regDeviceID:   0x0400,
	}}
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.addrs = append(f.addrs, addr)
	if f.fail != nil {
		return f.fail
	}
	if len(w) == 1 && len(r) == 2 {
		v := f.regs[w[0]]
		r[0], r[1] = byte(v>>8), byte(v)
		return nil
	}
	if len(r) == 0 {
		f.writes = append(f.writes, append([]byte(nil), w...))
		return nil
	}
	return errors.New("fake: unexpected transaction")
}

func TestConfigureAndRead(t *testing.T) {
	bus := newFakeMCP9808(0x0178) // 23.5 °C
	d := New(bus)
	if err := d.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	c, err := d.ReadTemperature()
	if err != nil {
		t.Fatalf("ReadTemperature: %v", err)
	}
	if c != 23.5 {
		t.Fatalf("ReadTemperature = %v, want 23.5", c)
	}
	m, err := d.MilliCelsius()
	if err != nil || m != 23500 {
		t.Fatalf("MilliCelsius = %d, %v want 23500", m, err)
	}
	for _, a := range bus.addrs {
		if a != Address {
			t.Fatalf("transaction to 0x%x, want 0x%x", a, Address)
		}
	}
}

func TestReadBeforeConfigure(t *testing.T) {
	d := New(newFakeMCP9808(0x0178))
	_, err := d.ReadTemperature()
	if !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("ReadTemperature before Configure err = %v", err)
	}
	if errcode.Of(err) != errcode.NotReady {
		t.Fatalf("code = %q, want not_ready", errcode.Of(err))
	}
	if err := d.SetResolution(ResolutionHalf); !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("SetResolution before Configure err = %v", err)
	}
}

func TestWrongDevice(t *testing.T) {
	bus := newFakeMCP9808(0)
	bus.regs[regManufactID] = 0x1234
	d := New(bus)
	if err := d.Configure(); !errors.Is(err, ErrWrongDevice) {
		t.Fatalf("Configure err = %v, want ErrWrongDevice", err)
	}
	if _, err := d.ReadRaw(); !errors.Is(err, ErrNotInitialised) {
		t.Fatalf("ReadRaw after failed Configure err = %v", err)
	}
	if err := d.Configure(Config{SkipIDCheck: true}); err != nil {
		t.Fatalf("Configure(SkipIDCheck) = %v", err)
	}
	if got := d.Identity().String(); got != "manufacturer 0x1234 device 0x0400" {
		t.Fatalf("Identity = %q", got)
	}
}

func TestRevisionByteIgnored(t *testing.T) {
	bus := newFakeMCP9808(0)
	bus.regs[regDeviceID] = 0x0401
	d := New(bus)
	if err := d.Configure(); err != nil {
		t.Fatalf("Configure with revision 1: %v", err)
	}
}

func TestBusErrorPassthrough(t *testing.T) {
	bus := newFakeMCP9808(0)
	bus.fail = errors.New("nack")
	d := New(bus)
	if err := d.Configure(); err != bus.fail {
		t.Fatalf("Configure err = %v, want bus error", err)
	}
}

func TestCustomAddressAndResolution(t *testing.T) {
	bus := newFakeMCP9808(0)
	d := New(bus)
	if err := d.Configure(Config{Address: 0x1C}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := d.SetResolution(ResolutionQuarter); err != nil {
		t.Fatalf("SetResolution: %v", err)
	}
	if len(bus.writes) != 1 || bus.writes[0][0] != regResolution || bus.writes[0][1] != 1 {
		t.Fatalf("resolution write = %v", bus.writes)
	}
	if last := bus.addrs[len(bus.addrs)-1]; last != 0x1C {
		t.Fatalf("address = 0x%x, want 0x1c", last)
	}
}

func TestCelsiusDecode(t *testing.T) {
	type C struct {
		raw   uint16
		want  float64
		milli int32
	}
	for _, c := range []C{
		{0x0000, 0, 0},
		{0x0178, 23.5, 23500},
		{0x0191, 25.0625, 25062},
		{0xE178, 23.5, 23500}, // alert flag bits ignored
		{0x1FF0, -1, -1000},
		{0x1E70, -25, -25000},
	} {
		if got := Celsius(c.raw); got != c.want {
			t.Fatalf("Celsius(0x%04x) = %v, want %v", c.raw, got, c.want)
		}
		if got := MilliCelsius(c.raw); got != c.milli {
			t.Fatalf("MilliCelsius(0x%04x) = %d, want %d", c.raw, got, c.milli)
		}
	}
}

func TestDecodeSettings(t *testing.T) {
	s := DecodeSettings(0x0000)
	if s != (Settings{}) {
		t.Fatalf("power-up settings = %+v", s)
	}
	s = DecodeSettings(1<<0 | 1<<3 | 1<<6 | 1<<8 | 2<<9)
	if !s.InterruptMode || !s.AlertEnabled || !s.WindowLocked || !s.Shutdown {
		t.Fatalf("flags not decoded: %+v", s)
	}
	if s.ActiveHigh || s.CriticalOnly || s.AlertAsserted || s.InterruptClear || s.CriticalLocked {
		t.Fatalf("unexpected flags set: %+v", s)
	}
	if s.HysteresisDeci != 30 {
		t.Fatalf("hysteresis = %d, want 30", s.HysteresisDeci)
	}
	if h := DecodeSettings(3 << 9).HysteresisDeci; h != 60 {
		t.Fatalf("hysteresis = %d, want 60", h)
	}
}
