// Package display renders temperature readings on a character display.
//
// Line 0 carries the onboard sensor, line 1 the external probe, each padded
// to a fixed number of fractional digits so the columns do not jump between
// refreshes:
//
//	onboard 23.50 °C
//	mcp9808 ---
package display

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"

	"mxchip-go/types"
	"mxchip-go/x/dtoa"
	"mxchip-go/x/mathx"
)

// Screen is a character display addressed by column and row.
type Screen interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Compile-time check.
var _ Screen = (*hd44780i2c.Device)(nil)

// Degree is the '°' glyph in the HD44780 A00 character ROM.
const Degree = 0xDF

// DefaultDigits matches the fixed-width readings used on the device.
const DefaultDigits = 2

// Missing is shown in place of an unavailable reading.
const Missing = "---"

// valueCapacity bounds a rendered reading, terminator included.
const valueCapacity = 16

// NewHD44780 configures a PCF8574-backed HD44780 LCD on bus.
func NewHD44780(bus drivers.I2C, addr, cols, rows uint8) *hd44780i2c.Device {
	d := hd44780i2c.New(bus, addr)
	d.Configure(hd44780i2c.Config{Width: cols, Height: rows})
	return &d
}

// Panel draws readings onto a Screen.
type Panel struct {
	scr  Screen
	f    *dtoa.Formatter
	prec dtoa.Precision
	cols int

	line  [40]byte
	value [valueCapacity]byte
}

// NewPanel returns a Panel writing at most cols characters per line. A nil
// formatter selects dtoa.Default.
func NewPanel(scr Screen, f *dtoa.Formatter, digits, cols int) *Panel {
	if f == nil {
		f = dtoa.Default
	}
	p := &Panel{scr: scr, f: f, prec: dtoa.Exactly(digits)}
	p.cols = mathx.Clamp(cols, 1, len(p.line))
	return p
}

// Show redraws both temperature lines.
func (p *Panel) Show(env types.Environment) {
	p.scr.ClearDisplay()
	p.reading(0, "onboard", env.Temperature, true)
	p.reading(1, "mcp9808", env.Probe, env.ProbeOK)
}

// Text writes s on row y, truncated to the panel width.
func (p *Panel) Text(y uint8, s string) {
	n := copy(p.line[:p.cols], s)
	p.scr.SetCursor(0, y)
	p.scr.Print(p.line[:n])
}

func (p *Panel) reading(y uint8, label string, v float64, ok bool) {
	n := copy(p.line[:], label)
	p.line[n] = ' '
	n++
	var s []byte
	if ok {
		s = p.f.Format(p.value[:], v, p.prec)
	}
	if len(s) == 0 {
		n += copy(p.line[n:], Missing)
	} else {
		n += copy(p.line[n:], s)
		n += copy(p.line[n:], []byte{' ', Degree, 'C'})
	}
	p.scr.SetCursor(0, y)
	p.scr.Print(p.line[:mathx.Min(n, p.cols)])
}
