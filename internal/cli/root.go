// Package cli implements the fkdtoa host tool: it formats values, previews
// telemetry payloads and renders the LCD panel without hardware attached.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mxchip-go/config"
)

var (
	// Version is injected via ldflags at build time.
	Version = "dev"

	// Global flags
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is resolved before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "fkdtoa",
	Short: "Bounded decimal formatting for sensor telemetry",
	Long: `fkdtoa renders floating point readings as plain decimal text into
fixed-capacity buffers, the same way the device firmware does.

Values are rounded to a number of fractional digits and either trimmed
(precision >= 0) or padded with zeros to exactly that many digits
(precision < 0).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return loadConfig()
	},
}

func setupLogging() {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Logs go to stderr; stdout carries only formatted output.
	if logFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Logger()
	}
}

func loadConfig() error {
	if cfgFile == "" {
		cfg = config.Default()
		return nil
	}
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug().
		Str("path", cfgFile).
		Str("producer", cfg.Formatter.Producer).
		Int("capacity", cfg.Formatter.Capacity).
		Msg("configuration loaded")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
