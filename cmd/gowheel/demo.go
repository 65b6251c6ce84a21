package main

import (
	"github.com/philipparndt/gowheel/internal/app"
	"github.com/spf13/cobra"
)

var demoConfigPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive wheel demo",
	Long: `Open a window with a sample control wheel. Move the mouse to highlight
wedges and click to select. With --config, the appearance is read from
a TOML file and reloaded live when the file changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		app.Run(demoConfigPath)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "", "wheel appearance config (TOML)")
	rootCmd.AddCommand(demoCmd)
}
