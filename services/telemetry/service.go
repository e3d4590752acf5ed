package telemetry

import (
	"context"
	"time"

	"mxchip-go/display"
	"mxchip-go/errcode"
	"mxchip-go/telemetry"
)

// DefaultInterval is the telemetry period until SetInterval changes it.
const DefaultInterval = 10 * time.Second

// DefaultCapacity fits the largest rotation state with room to spare.
const DefaultCapacity = 256

// Publisher sends one payload. The slice is only valid during the call.
type Publisher func(state telemetry.State, payload []byte) error

type Service struct {
	Sensors  telemetry.Sensors
	Builder  telemetry.Builder
	Panel    *display.Panel // optional
	Publish  Publisher
	Interval time.Duration
	Capacity int // payload bytes; 0: DefaultCapacity

	state     telemetry.State
	intervals chan time.Duration
	buf       []byte
}

// SetInterval changes the period of a running service. Non-positive values
// are rejected; a pending change is replaced.
func (s *Service) SetInterval(d time.Duration) error {
	if d <= 0 {
		return errcode.InvalidParams
	}
	s.ensureChan()
	for {
		select {
		case s.intervals <- d:
			return nil
		default:
		}
		select {
		case <-s.intervals:
		default:
		}
	}
}

func (s *Service) ensureChan() {
	if s.intervals == nil {
		s.intervals = make(chan time.Duration, 1)
	}
}

// Tick reads the sensors once, refreshes the panel and publishes the payload
// for the current rotation state. The panel and the payload share one
// environment reading. The state advances even when publishing fails so one
// bad reading does not stall the rotation.
func (s *Service) Tick() error {
	st := s.state
	s.state = st.Next()

	capacity := s.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if len(s.buf) != capacity {
		s.buf = make([]byte, capacity)
	}

	var payload []byte
	var err error
	if st == telemetry.StateDefault {
		env := s.Sensors.Environment()
		if s.Panel != nil {
			s.Panel.Show(env)
		}
		payload, err = s.Builder.Environment(s.buf, env)
	} else {
		payload, err = s.Builder.Build(s.buf, st, s.Sensors)
	}
	if err != nil {
		return err
	}
	return s.Publish(st, payload)
}

func (s *Service) serviceLoop(ctx context.Context) {
	tick := time.NewTicker(s.Interval)
	defer tick.Stop()

	// loop until context is cancelled, respond to tick and interval changes
	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case <-tick.C:
			if err := s.Tick(); err != nil {
				println("Error: telemetry:", string(errcode.Of(err)), err.Error())
			}
		case d := <-s.intervals:
			tick.Reset(d)
			s.Interval = d
			println("Info: telemetry interval set to", d.String())
		}
	}
}

// Start validates the service and runs its loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	if s.Sensors == nil || s.Publish == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "telemetry.start", Msg: "sensors and publisher are required"}
	}
	if s.Interval <= 0 {
		s.Interval = DefaultInterval
	}
	s.ensureChan()
	go s.serviceLoop(ctx)
	return nil
}
