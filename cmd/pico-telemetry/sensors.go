package main

import (
	"tinygo.org/x/drivers"

	"mxchip-go/drivers/aht20"
	"mxchip-go/drivers/mcp9808"
	"mxchip-go/types"
)

// boardSensors reads the AHT20 as the onboard sensor and the MCP9808 as the
// external probe. The board has no pressure sensor or IMU; those readings
// stay zero.
type boardSensors struct {
	onboard  aht20.Device
	probe    mcp9808.Device
	hasProbe bool
	last     types.Environment
}

func newBoardSensors(bus drivers.I2C) *boardSensors {
	s := &boardSensors{onboard: aht20.New(bus), probe: mcp9808.New(bus)}
	if err := s.onboard.Configure(); err != nil {
		println("Error: aht20:", err.Error())
	}
	if err := s.probe.Configure(); err != nil {
		println("Info: mcp9808 probe unavailable:", err.Error())
	} else {
		s.hasProbe = true
		println("Info: mcp9808", s.probe.Identity().String(), "shutdown", s.probe.Settings().Shutdown)
	}
	return s
}

// Environment keeps the previous onboard values when a measurement fails.
func (s *boardSensors) Environment() types.Environment {
	if r, err := s.onboard.Measure(); err != nil {
		println("Error: aht20:", err.Error())
	} else {
		s.last.Humidity = r.Humidity
		s.last.Temperature = r.Temperature
	}
	s.last.ProbeOK = false
	if s.hasProbe {
		c, err := s.probe.ReadTemperature()
		if err == nil {
			s.last.Probe, s.last.ProbeOK = c, true
		}
	}
	return s.last
}

func (s *boardSensors) Magnetometer() types.Vector3  { return types.Vector3{} }
func (s *boardSensors) Accelerometer() types.Vector3 { return types.Vector3{} }
func (s *boardSensors) Gyroscope() types.Vector3     { return types.Vector3{} }
