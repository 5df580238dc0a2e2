package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/listviz/internal/app"
	"github.com/five82/listviz/internal/ui"
)

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Play a YAML script of operations and print every frame",
	Long: `Replay runs a script of operations without the interactive screen and
prints a frame after each step and each timer. By default a virtual clock
is used, so output is instant and deterministic; --realtime waits for the
configured delays.`,
	Example: `  listviz replay demo.yaml
  listviz replay --realtime --no-color demo.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyColorFlag(cmd)

		realtime, _ := cmd.Flags().GetBool("realtime")
		width, _ := cmd.Flags().GetInt("width")
		reference, _ := cmd.Flags().GetBool("reference")

		return app.Replay(cmd.Context(), app.ReplayOptions{
			Options:    appOptions(cmd),
			ScriptPath: args[0],
			Realtime:   realtime,
			Width:      width,
			Reference:  reference,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().Bool("realtime", false, "honour the configured delays")
	replayCmd.Flags().Int("width", ui.DefaultFrameWidth, "frame width")
	replayCmd.Flags().Bool("reference", false, "include the complexity table in every frame")
}
