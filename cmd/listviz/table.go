package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/listviz/internal/app"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the operation complexity table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		opts := app.TableOptions{Width: width}
		if applyColorFlag(cmd) {
			opts.Style = "notty"
		}
		return app.PrintTable(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().Int("width", 100, "wrap width")
}
