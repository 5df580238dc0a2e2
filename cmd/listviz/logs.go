package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/listviz/internal/app"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the end of the listviz log file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, _ := cmd.Flags().GetInt("lines")
		return app.PrintLogs(cmd.OutOrStdout(), app.LogsOptions{
			Options: appOptions(cmd),
			Lines:   lines,
			NoColor: applyColorFlag(cmd),
		})
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntP("lines", "n", 50, "number of entries to show (0 for all)")
}
