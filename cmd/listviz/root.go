package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/listviz/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "listviz",
	Short: "Interactive singly linked list visualizer",
	Long: `listviz shows singly linked list operations step by step: inserts and
deletes at the head, tail or a position, and search, each highlighted on
screen and annotated with its time and space complexity.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), appOptions(cmd))
	},
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "override config path (default ~/.config/listviz/config.toml)")
	rootCmd.PersistentFlags().String("prefs", "", "override prefs path (default ~/.config/listviz/prefs.toml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colors in printed output")
}

func appOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	prefsPath, _ := cmd.Flags().GetString("prefs")
	return app.Options{ConfigPath: configPath, PrefsPath: prefsPath}
}

// applyColorFlag switches lipgloss to plain ASCII output when --no-color is
// set and reports whether it did.
func applyColorFlag(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return noColor
}
