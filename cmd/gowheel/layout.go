package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gowheel/pkg/analysis"
	"github.com/philipparndt/gowheel/pkg/wheel"
	"github.com/spf13/cobra"
)

var layoutConfigPath string

var layoutCmd = &cobra.Command{
	Use:   "layout <segment>...",
	Short: "Resolve and print the slot layout for a set of segments",
	Long: `Resolve the slot order for the given segments and print the angular
layout each one would be built with.

Each segment is written as name[:position], where position is one of
top, bottom, left, right. Examples:

  gowheel layout menu:top back:bottom tools help
  gowheel layout --config wheel.toml a:top b c d:right`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&layoutConfigPath, "config", "", "wheel appearance config (TOML)")
	rootCmd.AddCommand(layoutCmd)
}

func parseSegmentSpec(spec string) (*wheel.Segment, error) {
	name, position, found := strings.Cut(spec, ":")
	if name == "" {
		return nil, fmt.Errorf("segment spec %q has no name", spec)
	}
	seg := wheel.NewSegment(name, nil)
	if !found {
		return seg, nil
	}

	switch strings.ToLower(position) {
	case "top":
		seg.Preferred = wheel.PositionTop
	case "bottom":
		seg.Preferred = wheel.PositionBottom
	case "left":
		seg.Preferred = wheel.PositionLeft
	case "right":
		seg.Preferred = wheel.PositionRight
	case "", "none":
	default:
		return nil, fmt.Errorf("unknown position %q in segment spec %q", position, spec)
	}
	return seg, nil
}

func runLayout(cmd *cobra.Command, args []string) {
	cfg := wheel.DefaultConfig()
	if layoutConfigPath != "" {
		loaded, err := wheel.LoadConfig(layoutConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	segments := make([]*wheel.Segment, 0, len(args))
	for _, spec := range args {
		seg, err := parseSegmentSpec(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		segments = append(segments, seg)
	}

	result := analysis.AnalyzeLayout(segments, cfg)

	fmt.Println("Wheel Layout")
	fmt.Println("============")
	fmt.Printf("Segments: %d\n", len(result.Slots))
	fmt.Printf("Total span: %.2f°\n", analysis.Degrees(result.TotalSpan))
	fmt.Printf("Geometry: %d vertices, %d triangles\n\n", result.Vertices, result.Triangles)

	fmt.Printf("%-5s %-12s %-8s %10s %9s  %s\n", "Slot", "Name", "Hint", "Start", "Width", "Boundary")
	for _, slot := range result.Slots {
		fmt.Printf("%-5d %-12s %-8s %9.2f° %8.2f°  %s\n",
			slot.Slot,
			slot.Name,
			slot.Hint.String(),
			analysis.Degrees(slot.StartAngle),
			analysis.Degrees(slot.Width),
			analysis.FormatDirection(slot.Boundary))
	}
}
