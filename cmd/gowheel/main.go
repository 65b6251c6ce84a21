package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowheel/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gowheel",
	Short: "A radial control wheel widget toolkit",
	Long: `gowheel builds circular, segmented selection wheels: each segment binds
a named action, an icon and an optional label to an angular wedge. The
CLI inspects resolved layouts and runs the interactive demo.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
