// Package aht20 drives the AHT20 humidity and temperature sensor that stands
// in for the board's onboard environment sensor.
//
//	d := aht20.New(bus)
//	err := d.Configure()
//	r, err := d.Measure()   // r.Humidity in %RH, r.Temperature in °C
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package aht20

import (
	"time"

	"tinygo.org/x/drivers"

	"mxchip-go/errcode"
)

// I2C address.
const Address = 0x38

const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

var (
	ErrTimeout  = &errcode.E{C: errcode.Timeout, Op: "aht20.measure"}
	ErrNotReady = &errcode.E{C: errcode.NotReady, Op: "aht20.collect"}
	ErrChecksum = &errcode.E{C: errcode.InvalidValue, Op: "aht20.collect", Msg: "crc mismatch"}
)

// Config is optional; zero fields take defaults.
type Config struct {
	Address uint16 // 0x38
	// ConversionTime is waited after triggering, before the first poll.
	ConversionTime time.Duration // 80 ms
	PollInterval   time.Duration // 10 ms
	Timeout        time.Duration // 250 ms, from trigger
}

func (c *Config) defaults() {
	if c.ConversionTime <= 0 {
		c.ConversionTime = 80 * time.Millisecond
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 10 * time.Millisecond
	}
	if c.Timeout <= 0 {
		c.Timeout = 250 * time.Millisecond
	}
}

// Reading is one converted measurement.
type Reading struct {
	Humidity    float64 // %RH
	Temperature float64 // °C
}

type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg Config
	buf [7]byte
}

// New only binds the bus; it does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure applies cfg and calibrates the sensor unless it reports itself
// calibrated already.
func (d *Device) Configure(cfgs ...Config) error {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	c.defaults()
	d.cfg = c

	st, err := d.Status()
	if err == nil && st&statusCalibrated != 0 {
		return nil
	}
	if err := d.bus.Tx(d.Address, []byte{cmdInitialize, 0x08, 0x00}, nil); err != nil {
		return errcode.Wrap(errcode.Error, "aht20.configure", err)
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// Reset issues a soft reset. The device needs about 20 ms afterwards.
func (d *Device) Reset() error {
	return d.bus.Tx(d.Address, []byte{cmdSoftReset}, nil)
}

func (d *Device) Status() (byte, error) {
	b := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{cmdStatus}, b); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Measure triggers a conversion and polls until it completes or the timeout
// elapses.
func (d *Device) Measure() (Reading, error) {
	if d.cfg.Timeout == 0 {
		d.cfg.defaults()
	}
	if err := d.bus.Tx(d.Address, []byte{cmdTrigger, 0x33, 0x00}, nil); err != nil {
		return Reading{}, err
	}
	deadline := time.Now().Add(d.cfg.Timeout)
	time.Sleep(d.cfg.ConversionTime)
	for {
		r, err := d.collect()
		if err != ErrNotReady {
			return r, err
		}
		if time.Now().After(deadline) {
			return Reading{}, ErrTimeout
		}
		time.Sleep(d.cfg.PollInterval)
	}
}

func (d *Device) collect() (Reading, error) {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return Reading{}, err
	}
	if data[0]&statusBusy != 0 || data[0]&statusCalibrated == 0 {
		return Reading{}, ErrNotReady
	}
	if crc8(data[:6]) != data[6] {
		return Reading{}, ErrChecksum
	}
	h := uint32(data[1])<<12 | uint32(data[2])<<4 | uint32(data[3])>>4
	t := uint32(data[3]&0x0F)<<16 | uint32(data[4])<<8 | uint32(data[5])
	return Decode(h, t), nil
}

// Decode converts 20-bit raw samples.
func Decode(rawHumidity, rawTemp uint32) Reading {
	return Reading{
		Humidity:    float64(rawHumidity) * 100 / (1 << 20),
		Temperature: float64(rawTemp)*200/(1<<20) - 50,
	}
}

// crc8 is CRC-8 with polynomial 0x31 and initial value 0xFF.
func crc8(b []byte) byte {
	crc := byte(0xFF)
	for _, x := range b {
		crc ^= x
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
