package mcp9808

// Settings is the decoded configuration register (datasheet register 5-2).
type Settings struct {
	InterruptMode  bool // alert output in interrupt mode; comparator otherwise
	ActiveHigh     bool // alert output polarity
	CriticalOnly   bool // alert only for T > Tcrit
	AlertEnabled   bool
	AlertAsserted  bool
	InterruptClear bool
	WindowLocked   bool // Tupper/Tlower cannot be written
	CriticalLocked bool // Tcrit cannot be written
	Shutdown       bool // low-power mode, no conversions

	// HysteresisDeci is the Tupper/Tlower hysteresis in tenths of °C:
	// 0, 15, 30 or 60.
	HysteresisDeci uint8
}

var hysteresisDeci = [4]uint8{0, 15, 30, 60}

func DecodeSettings(reg uint16) Settings {
	return Settings{
		InterruptMode:  reg&(1<<0) != 0,
		ActiveHigh:     reg&(1<<1) != 0,
		CriticalOnly:   reg&(1<<2) != 0,
		AlertEnabled:   reg&(1<<3) != 0,
		AlertAsserted:  reg&(1<<4) != 0,
		InterruptClear: reg&(1<<5) != 0,
		WindowLocked:   reg&(1<<6) != 0,
		CriticalLocked: reg&(1<<7) != 0,
		Shutdown:       reg&(1<<8) != 0,
		HysteresisDeci: hysteresisDeci[(reg>>9)&3],
	}
}
