// Package telemetry assembles the device's JSON telemetry and property
// payloads from sensor readings. Numbers are rendered with x/dtoa so the
// output is identical on host and MCU builds.
package telemetry

import (
	"mxchip-go/types"
	"mxchip-go/x/dtoa"
)

// DefaultDigits is the fractional precision of every telemetry value.
const DefaultDigits = 2

// Sensors supplies the readings for one payload.
type Sensors interface {
	Environment() types.Environment
	Magnetometer() types.Vector3
	Accelerometer() types.Vector3
	Gyroscope() types.Vector3
}

// State selects which readings the next payload carries. Payloads rotate
// so that each message stays small.
type State uint8

const (
	StateDefault State = iota
	StateMagnetometer
	StateAccelerometer
	StateGyroscope
	numStates
)

// Next returns the state after s, wrapping to StateDefault.
func (s State) Next() State { return (s + 1) % numStates }

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateMagnetometer:
		return "magnetometer"
	case StateAccelerometer:
		return "accelerometer"
	case StateGyroscope:
		return "gyroscope"
	}
	return "unknown"
}

// Telemetry property names.
const (
	PropHumidity     = "humidity"
	PropTemperature  = "temperature"
	PropTemperature2 = "temperature2"
	PropPressure     = "pressure"
)

var vectorNames = [numStates][3]string{
	StateMagnetometer:  {"magnetometerX", "magnetometerY", "magnetometerZ"},
	StateAccelerometer: {"accelerometerX", "accelerometerY", "accelerometerZ"},
	StateGyroscope:     {"gyroscopeX", "gyroscopeY", "gyroscopeZ"},
}

// Builder renders payloads with a shared formatter and precision.
type Builder struct {
	Formatter *dtoa.Formatter // nil: dtoa.Default
	Digits    int             // fractional digits; negative: DefaultDigits
}

func (b Builder) digits() int {
	if b.Digits < 0 {
		return DefaultDigits
	}
	return b.Digits
}

// Build writes the payload for state st into dst. temperature2 (the probe)
// is left out when the probe reading is unavailable.
func (b Builder) Build(dst []byte, st State, s Sensors) ([]byte, error) {
	if st == StateDefault {
		return b.Environment(dst, s.Environment())
	}
	w := NewWriter(dst, b.Formatter)
	d := b.digits()
	switch st {
	case StateMagnetometer:
		vector(w, vectorNames[st], s.Magnetometer(), d)
	case StateAccelerometer:
		vector(w, vectorNames[st], s.Accelerometer(), d)
	case StateGyroscope:
		vector(w, vectorNames[st], s.Gyroscope(), d)
	}
	return w.Finish()
}

// Environment writes the default-state payload for a reading already taken.
func (b Builder) Environment(dst []byte, env types.Environment) ([]byte, error) {
	w := NewWriter(dst, b.Formatter)
	d := b.digits()
	w.Float(PropHumidity, env.Humidity, d)
	w.Float(PropTemperature, env.Temperature, d)
	if env.ProbeOK {
		w.Float(PropTemperature2, env.Probe, d)
	}
	w.Float(PropPressure, env.Pressure, d)
	return w.Finish()
}

func vector(w *Writer, names [3]string, v types.Vector3, digits int) {
	w.Float(names[0], v.X, digits)
	w.Float(names[1], v.Y, digits)
	w.Float(names[2], v.Z, digits)
}

// DeviceInfo is the static device information reported once after connect.
type DeviceInfo struct {
	Manufacturer          string
	Model                 string
	SWVersion             string
	OSName                string
	ProcessorArchitecture string
	ProcessorManufacturer string
	TotalStorage          float64 // KiB
	TotalMemory           float64 // KiB
}

// DeviceInfo writes the device information properties.
func (b Builder) DeviceInfo(dst []byte, info DeviceInfo) ([]byte, error) {
	w := NewWriter(dst, b.Formatter)
	w.String("manufacturer", info.Manufacturer)
	w.String("model", info.Model)
	w.String("swVersion", info.SWVersion)
	w.String("osName", info.OSName)
	w.String("processorArchitecture", info.ProcessorArchitecture)
	w.String("processorManufacturer", info.ProcessorManufacturer)
	w.Float("totalStorage", info.TotalStorage, b.digits())
	w.Float("totalMemory", info.TotalMemory, b.digits())
	return w.Finish()
}

// Reported is the set of read-only and writable properties the device
// reports back.
type Reported struct {
	LEDState          bool
	TelemetryInterval int // seconds
}

// Properties writes the reported properties.
func (b Builder) Properties(dst []byte, r Reported) ([]byte, error) {
	w := NewWriter(dst, b.Formatter)
	w.Bool("ledState", r.LEDState)
	w.Int("telemetryInterval", int64(r.TelemetryInterval))
	return w.Finish()
}
