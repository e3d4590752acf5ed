package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mxchip-go/display"
	"mxchip-go/types"
)

var panelEnv types.Environment

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Render the LCD temperature panel as text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := panelEnv
		env.ProbeOK = cmd.Flags().Changed("probe")

		g := display.NewGrid(cfg.Display.Columns, cfg.Display.Rows)
		p := display.NewPanel(g, cfg.NewFormatter(), cfg.Display.Digits, cfg.Display.Columns)
		p.Show(env)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), g.String())
		return err
	},
}

func init() {
	displayCmd.Flags().Float64Var(&panelEnv.Temperature, "temperature", 0, "onboard temperature (°C)")
	displayCmd.Flags().Float64Var(&panelEnv.Probe, "probe", 0, "MCP9808 probe temperature (°C)")
	rootCmd.AddCommand(displayCmd)
}
