package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gowheel/pkg/geometry"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

// SlotInfo describes one slot of a resolved wheel layout
type SlotInfo struct {
	Slot       int
	Name       string
	Hint       wheel.Position
	StartAngle float64 // radians
	Width      float64 // radians
	Boundary   geometry.Vector2
	Midpoint   geometry.Vector2
	Vertices   int
	Triangles  int
}

// LayoutResult contains the resolved layout for a set of segments
type LayoutResult struct {
	Slots     []SlotInfo
	TotalSpan float64 // radians, should cover the full circle
	Vertices  int     // total across all wedges
	Triangles int
}

// AnalyzeLayout resolves the slot order for the given segments and
// reports the geometry each slot would be built with
func AnalyzeLayout(segments []*wheel.Segment, cfg wheel.Config) *LayoutResult {
	ordered := wheel.Arrange(segments, nil)
	n := len(ordered)

	result := &LayoutResult{
		Slots: make([]SlotInfo, 0, n),
	}

	for slot, seg := range ordered {
		wd := wheel.BuildWedge(slot, n, cfg)
		result.Slots = append(result.Slots, SlotInfo{
			Slot:       slot,
			Name:       seg.Name,
			Hint:       seg.Preferred,
			StartAngle: wd.StartAngle,
			Width:      wd.Width,
			Boundary:   wd.Boundary,
			Midpoint:   geometry.Direction(wd.StartAngle + wd.Width/2),
			Vertices:   len(wd.Mesh.Vertices),
			Triangles:  wd.Mesh.TriangleCount(),
		})
		result.TotalSpan += wd.Width
		result.Vertices += len(wd.Mesh.Vertices)
		result.Triangles += wd.Mesh.TriangleCount()
	}

	return result
}

// Degrees converts an angle from radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// FormatDirection formats a unit direction for display
func FormatDirection(v geometry.Vector2) string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
