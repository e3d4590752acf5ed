// Package config loads the formatter, telemetry and display settings from a
// YAML file layered over built-in defaults.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"mxchip-go/errcode"
	"mxchip-go/telemetry"
	"mxchip-go/x/dtoa"
)

// Producer names accepted in formatter.producer.
const (
	ProducerStrconv = "strconv"
	ProducerDecimal = "decimal"
	ProducerFixed   = "fixed"
)

type FormatterConfig struct {
	Producer string `yaml:"producer" validate:"oneof=strconv decimal fixed"`
	Capacity int    `yaml:"capacity" validate:"gte=1,lte=256"`
}

type TelemetryConfig struct {
	IntervalSeconds int `yaml:"interval_seconds" validate:"gte=1"`
	Digits          int `yaml:"digits" validate:"gte=0,lte=15"`
	PayloadCapacity int `yaml:"payload_capacity" validate:"gte=16,lte=4096"`
}

type DisplayConfig struct {
	Digits  int `yaml:"digits" validate:"gte=0,lte=6"`
	Columns int `yaml:"columns" validate:"gte=8,lte=40"`
	Rows    int `yaml:"rows" validate:"gte=2,lte=4"`
}

type Config struct {
	Formatter FormatterConfig `yaml:"formatter"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Display   DisplayConfig   `yaml:"display"`
}

// Default matches the device firmware: 16x2 LCD, two fractional digits,
// ten second telemetry period.
func Default() Config {
	return Config{
		Formatter: FormatterConfig{Producer: ProducerStrconv, Capacity: 32},
		Telemetry: TelemetryConfig{
			IntervalSeconds: 10,
			Digits:          telemetry.DefaultDigits,
			PayloadCapacity: 256,
		},
		Display: DisplayConfig{Digits: 2, Columns: 16, Rows: 2},
	}
}

// Parse decodes YAML over the defaults and validates the result. Keys left
// out of data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidParams, "config.parse", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errcode.Wrap(errcode.InvalidParams, "config.validate", err)
	}
	return nil
}

// Producer returns the digit producer named by the formatter section.
func (c Config) Producer() dtoa.Producer {
	switch c.Formatter.Producer {
	case ProducerDecimal:
		return dtoa.Decimal{}
	case ProducerFixed:
		return dtoa.Fixed{}
	}
	return dtoa.Strconv{}
}

func (c Config) NewFormatter() *dtoa.Formatter { return dtoa.New(c.Producer()) }

func (c Config) Interval() time.Duration {
	return time.Duration(c.Telemetry.IntervalSeconds) * time.Second
}
