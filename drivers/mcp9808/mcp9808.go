// Package mcp9808 provides a driver for the MCP9808 digital temperature
// sensor (±0.25 °C typical, 0.0625 °C resolution).
//
//	d := mcp9808.New(bus)
//	if err := d.Configure(); err != nil { ... }  // verifies the chip IDs
//	c, err := d.ReadTemperature()
//
// Reads before a successful Configure return ErrNotInitialised instead of a
// magic temperature.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package mcp9808

import (
	"tinygo.org/x/drivers"

	"mxchip-go/errcode"
	"mxchip-go/x/conv"
)

// I2C address with A2..A0 tied low.
const Address = 0x18

// Registers (datasheet table 5-1).
const (
	regConfig     = 0x01
	regAmbient    = 0x05
	regManufactID = 0x06
	regDeviceID   = 0x07
	regResolution = 0x08
)

// Expected identification values. The low byte of the device ID register is
// the silicon revision.
const (
	ManufacturerID = 0x0054
	DeviceID       = 0x04
)

// Errors returned by the driver. Bus errors are returned as-is.
var (
	ErrNotInitialised = &errcode.E{C: errcode.NotReady, Op: "mcp9808", Msg: "not initialised"}
	ErrWrongDevice    = &errcode.E{C: errcode.WrongDevice, Op: "mcp9808", Msg: "unexpected manufacturer or device id"}
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x18 if zero.
	Address uint16
	// SkipIDCheck accepts parts that report foreign IDs (clones).
	SkipIDCheck bool
}

// Device wraps an I2C connection to an MCP9808.
type Device struct {
	bus     drivers.I2C
	Address uint16

	ready    bool
	id       Identity
	settings Settings
	buf      [2]byte
}

// New creates a Device. The I2C bus must already be configured. Nothing is
// sent to the sensor until Configure.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure reads the configuration and identification registers and checks
// that the part is an MCP9808.
func (d *Device) Configure(cfgs ...Config) error {
	var cfg Config
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	d.ready = false

	reg, err := d.readReg(regConfig)
	if err != nil {
		return err
	}
	mid, err := d.readReg(regManufactID)
	if err != nil {
		return err
	}
	did, err := d.readReg(regDeviceID)
	if err != nil {
		return err
	}
	d.settings = DecodeSettings(reg)
	d.id = Identity{Manufacturer: mid, Device: did}

	if !cfg.SkipIDCheck && (mid != ManufacturerID || did>>8 != DeviceID) {
		return ErrWrongDevice
	}
	d.ready = true
	return nil
}

// Identity returns the IDs read by the last Configure.
func (d *Device) Identity() Identity { return d.id }

// Settings returns the configuration register decoded by the last Configure.
func (d *Device) Settings() Settings { return d.settings }

// ReadRaw returns the ambient temperature register.
func (d *Device) ReadRaw() (uint16, error) {
	if !d.ready {
		return 0, ErrNotInitialised
	}
	return d.readReg(regAmbient)
}

// ReadTemperature returns the ambient temperature in °C.
func (d *Device) ReadTemperature() (float64, error) {
	raw, err := d.ReadRaw()
	if err != nil {
		return 0, err
	}
	return Celsius(raw), nil
}

// MilliCelsius returns the ambient temperature in thousandths of °C,
// truncated toward zero from the 1/16 °C register resolution.
func (d *Device) MilliCelsius() (int32, error) {
	raw, err := d.ReadRaw()
	if err != nil {
		return 0, err
	}
	return MilliCelsius(raw), nil
}

// Resolution selects the conversion resolution (and conversion time).
type Resolution uint8

const (
	ResolutionHalf      Resolution = iota // 0.5 °C, 30 ms
	ResolutionQuarter                     // 0.25 °C, 65 ms
	ResolutionEighth                      // 0.125 °C, 130 ms
	ResolutionSixteenth                   // 0.0625 °C, 250 ms (power-up default)
)

// SetResolution writes the resolution register.
func (d *Device) SetResolution(r Resolution) error {
	if !d.ready {
		return ErrNotInitialised
	}
	return d.bus.Tx(d.Address, []byte{regResolution, byte(r) & 3}, nil)
}

func (d *Device) readReg(reg byte) (uint16, error) {
	w := [1]byte{reg}
	if err := d.bus.Tx(d.Address, w[:], d.buf[:]); err != nil {
		return 0, err
	}
	// Registers are big-endian.
	return uint16(d.buf[0])<<8 | uint16(d.buf[1]), nil
}

// Celsius decodes an ambient temperature register value: 12 bits of 1/16 °C
// magnitude plus a sign bit (bit 12). The three alert flag bits are ignored.
func Celsius(raw uint16) float64 {
	c := float64(raw&0x0fff) / 16.0
	if raw&0x1000 != 0 {
		c -= 256.0
	}
	return c
}

// MilliCelsius is the fixed-point form of Celsius.
func MilliCelsius(raw uint16) int32 {
	m := int32(raw&0x0fff) * 625 / 10
	if raw&0x1000 != 0 {
		m -= 256000
	}
	return m
}

// Identity holds the manufacturer and device ID registers.
type Identity struct {
	Manufacturer uint16
	Device       uint16
}

// String renders "manufacturer 0x0054 device 0x0400".
func (id Identity) String() string {
	var b [36]byte
	n := copy(b[:], "manufacturer 0x")
	k, _ := conv.PutHex16(b[n:], id.Manufacturer)
	n += k
	n += copy(b[n:], " device 0x")
	k, _ = conv.PutHex16(b[n:], id.Device)
	n += k
	return string(b[:n])
}
