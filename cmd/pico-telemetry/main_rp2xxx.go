// cmd/pico-telemetry/main_rp2xxx.go
//go:build rp2040 || rp2350

package main

import (
	"context"
	"machine"
	"time"

	"mxchip-go/display"
	svc "mxchip-go/services/telemetry"
	"mxchip-go/telemetry"
	"mxchip-go/x/dtoa"
)

const (
	lcdAddress = 0x27
	lcdCols    = 16
	lcdRows    = 2

	interval = 10 * time.Second
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	bus := machine.I2C0
	_ = bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})

	sensors := newBoardSensors(bus)
	lcd := display.NewHD44780(bus, lcdAddress, lcdCols, lcdRows)
	panel := display.NewPanel(lcd, dtoa.Default, display.DefaultDigits, lcdCols)
	panel.Text(0, "fk_dtoa telemetry")

	b := telemetry.Builder{Digits: telemetry.DefaultDigits}
	var buf [256]byte
	if p, err := b.DeviceInfo(buf[:], telemetry.DeviceInfo{
		Manufacturer:          "Raspberry Pi",
		Model:                 "Pico",
		SWVersion:             "1.0.0",
		OSName:                "TinyGo",
		ProcessorArchitecture: "ARM Cortex M0+",
		ProcessorManufacturer: "Raspberry Pi",
		TotalStorage:          2048,
		TotalMemory:           264,
	}); err == nil {
		println("properties", string(p))
	}
	if p, err := b.Properties(buf[:], telemetry.Reported{TelemetryInterval: int(interval / time.Second)}); err == nil {
		println("properties", string(p))
	}

	s := &svc.Service{
		Sensors:  sensors,
		Builder:  b,
		Panel:    panel,
		Interval: interval,
		Publish: func(st telemetry.State, payload []byte) error {
			println("telemetry", st.String(), string(payload))
			return nil
		},
	}
	if err := s.Start(context.Background()); err != nil {
		println("Error: telemetry:", err.Error())
	}
	select {}
}
