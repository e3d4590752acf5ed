package types

// ------------------------
// Environment
// ------------------------

// Environment is one poll of the environmental sensors. The probe is an
// optional external temperature sensor; Probe is meaningless unless ProbeOK.
type Environment struct {
	Humidity    float64 `json:"humidity"`    // %RH
	Temperature float64 `json:"temperature"` // °C, onboard
	Pressure    float64 `json:"pressure"`    // hPa
	Probe       float64 `json:"probe"`       // °C, external probe
	ProbeOK     bool    `json:"probe_ok"`
}

// ------------------------
// Motion
// ------------------------

// Vector3 is a three-axis reading. Units depend on the source: mG for the
// magnetometer, mg for the accelerometer, mdps for the gyroscope.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
