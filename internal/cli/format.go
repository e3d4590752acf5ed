package cli

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mxchip-go/errcode"
)

var (
	formatPrecision int
	formatCapacity  int
)

var formatCmd = &cobra.Command{
	Use:   "format VALUE...",
	Short: "Format values with the configured producer",
	Example: `  fkdtoa format 23.5 -p -2        # 23.50
  fkdtoa format 3.14159 -p 2      # 3.14
  fkdtoa format 5 -p -3 --capacity 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		capacity := cfg.Formatter.Capacity
		if formatCapacity > 0 {
			capacity = formatCapacity
		}
		f := cfg.NewFormatter()
		buf := make([]byte, capacity)
		out := cmd.OutOrStdout()
		for _, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return errcode.Wrap(errcode.InvalidParams, "format", err)
			}
			s := f.FormatSigned(buf, v, formatPrecision)
			if len(s) == 0 {
				log.Warn().Str("value", a).Int("capacity", capacity).Msg("value does not fit")
			}
			log.Debug().
				Float64("value", v).
				Int("precision", formatPrecision).
				Str("producer", cfg.Formatter.Producer).
				Int("len", len(s)).
				Msg("formatted")
			fmt.Fprintln(out, string(s))
		}
		return nil
	},
}

func init() {
	formatCmd.Flags().IntVarP(&formatPrecision, "precision", "p", 2, "fractional digits: >= 0 trims, < 0 pads to exactly -p")
	formatCmd.Flags().IntVar(&formatCapacity, "capacity", 0, "buffer capacity including the terminator (default: from config)")
	rootCmd.AddCommand(formatCmd)
}
