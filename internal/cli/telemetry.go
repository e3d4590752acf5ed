package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	svc "mxchip-go/services/telemetry"
	"mxchip-go/telemetry"
	"mxchip-go/types"
)

// readings is a fixed set of sensor values taken from flags.
type readings struct {
	env              types.Environment
	mag, accel, gyro types.Vector3
}

func (r *readings) Environment() types.Environment { return r.env }
func (r *readings) Magnetometer() types.Vector3    { return r.mag }
func (r *readings) Accelerometer() types.Vector3   { return r.accel }
func (r *readings) Gyroscope() types.Vector3       { return r.gyro }

var (
	sample            readings
	telemetryN        int
	telemetryProp     bool
	telemetryWatch    bool
	telemetryInterval time.Duration
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Print the telemetry payloads the device would send",
	Long: `Runs the telemetry rotation (default, magnetometer, accelerometer,
gyroscope) over the readings given by flags and prints one payload per tick.
temperature2 is included only when --probe is set.

With --watch the ticks run on the telemetry service's timer, starting at the
configured period; --interval then changes the period of the running service
the way a telemetryInterval property update does on the device.`,
	Example: `  fkdtoa telemetry --temperature 23.5 --humidity 41
  fkdtoa telemetry --watch --interval 1s -n 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := sample
		r.env.ProbeOK = cmd.Flags().Changed("probe")

		b := telemetry.Builder{Formatter: cfg.NewFormatter(), Digits: cfg.Telemetry.Digits}
		out := cmd.OutOrStdout()
		s := &svc.Service{
			Sensors:  &r,
			Builder:  b,
			Capacity: cfg.Telemetry.PayloadCapacity,
			Publish: func(st telemetry.State, payload []byte) error {
				_, err := fmt.Fprintf(out, "%s %s\n", st, payload)
				return err
			},
		}
		if telemetryWatch {
			if err := watch(cmd.Context(), s, telemetryN); err != nil {
				return err
			}
		} else {
			for i := 0; i < telemetryN; i++ {
				if err := s.Tick(); err != nil {
					return err
				}
			}
		}
		if !telemetryProp {
			return nil
		}

		buf := make([]byte, cfg.Telemetry.PayloadCapacity)
		info, err := b.DeviceInfo(buf, telemetry.DeviceInfo{
			Manufacturer:          "Raspberry Pi",
			Model:                 "Pico",
			SWVersion:             Version,
			OSName:                "TinyGo",
			ProcessorArchitecture: runtime.GOARCH,
			ProcessorManufacturer: "Raspberry Pi",
			TotalStorage:          2048,
			TotalMemory:           264,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "properties %s\n", info)

		interval := cfg.Interval()
		if telemetryInterval > 0 {
			interval = telemetryInterval
		}
		reported, err := b.Properties(buf, telemetry.Reported{TelemetryInterval: int(interval / time.Second)})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "properties %s\n", reported)
		log.Debug().Int("ticks", telemetryN).Msg("telemetry preview done")
		return nil
	},
}

// watch runs s on its timer until n payloads are published, or until
// interrupted when n <= 0.
func watch(parent context.Context, s *svc.Service, n int) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt)
	defer cancel()

	done := make(chan struct{})
	publish := s.Publish
	count := 0
	s.Publish = func(st telemetry.State, payload []byte) error {
		if n > 0 && count >= n {
			return nil
		}
		err := publish(st, payload)
		count++
		if count == n {
			close(done)
		}
		return err
	}

	s.Interval = cfg.Interval()
	if err := s.Start(ctx); err != nil {
		return err
	}
	if telemetryInterval != 0 {
		if err := s.SetInterval(telemetryInterval); err != nil {
			return err
		}
		log.Info().Dur("interval", telemetryInterval).Msg("telemetry interval updated")
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
	return nil
}

func init() {
	f := telemetryCmd.Flags()
	f.Float64Var(&sample.env.Temperature, "temperature", 0, "onboard temperature (°C)")
	f.Float64Var(&sample.env.Humidity, "humidity", 0, "relative humidity (%)")
	f.Float64Var(&sample.env.Pressure, "pressure", 0, "pressure (hPa)")
	f.Float64Var(&sample.env.Probe, "probe", 0, "MCP9808 probe temperature (°C)")
	f.Float64Var(&sample.mag.X, "mag-x", 0, "magnetometer X")
	f.Float64Var(&sample.mag.Y, "mag-y", 0, "magnetometer Y")
	f.Float64Var(&sample.mag.Z, "mag-z", 0, "magnetometer Z")
	f.Float64Var(&sample.accel.X, "accel-x", 0, "accelerometer X")
	f.Float64Var(&sample.accel.Y, "accel-y", 0, "accelerometer Y")
	f.Float64Var(&sample.accel.Z, "accel-z", 0, "accelerometer Z")
	f.Float64Var(&sample.gyro.X, "gyro-x", 0, "gyroscope X")
	f.Float64Var(&sample.gyro.Y, "gyro-y", 0, "gyroscope Y")
	f.Float64Var(&sample.gyro.Z, "gyro-z", 0, "gyroscope Z")
	f.IntVarP(&telemetryN, "count", "n", 4, "number of payloads (with --watch, 0 runs until interrupted)")
	f.BoolVar(&telemetryProp, "properties", false, "also print device info and reported properties")
	f.BoolVar(&telemetryWatch, "watch", false, "publish on the service timer instead of ticking immediately")
	f.DurationVar(&telemetryInterval, "interval", 0, "telemetry period (default: from config)")
	rootCmd.AddCommand(telemetryCmd)
}
