package wheel

import (
	"math"

	"github.com/philipparndt/gowheel/pkg/geometry"
)

// Mesh holds flat-shaded geometry in the owning visual's local frame.
// Triangles lists vertex indices, three per triangle; Normals carries
// one normal per vertex.
type Mesh struct {
	Vertices  []geometry.Vector3
	Triangles []int
	Normals   []geometry.Vector3
}

// TriangleCount returns the number of triangles in the mesh
func (m Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Transform places a visual relative to its parent
type Transform struct {
	Position geometry.Vector3
	Rotation geometry.Vector3 // Euler angles in radians
	Scale    geometry.Vector3
}

// IdentityTransform returns a transform with no offset and unit scale
func IdentityTransform() Transform {
	return Transform{Scale: geometry.NewVector3(1, 1, 1)}
}

// uniformScale returns an identity transform offset to pos with the
// given uniform scale factor
func uniformScale(pos geometry.Vector3, factor float64) Transform {
	return Transform{
		Position: pos,
		Scale:    geometry.NewVector3(factor, factor, factor),
	}
}

// Wedge is the derived geometry for one slot of the wheel. Wedges are
// rebuilt wholesale on every segment mutation and carry no identity of
// their own.
type Wedge struct {
	Segment *Segment
	Slot    int

	StartAngle float64 // radians, where the slot's span begins
	Width      float64 // angular span in radians

	// Boundary is the unit direction at StartAngle. The locator uses
	// it to test which slot a pointer direction falls in.
	Boundary geometry.Vector2

	// Pivot is the visual's origin, pushed out from the wheel center
	// toward the slot midpoint. Scaling the visual up around this
	// pivot makes the wedge read as sliding outward when highlighted.
	Pivot geometry.Vector3

	Mesh           Mesh
	IconTransform  Transform
	LabelTransform Transform

	visual Visual // owned by the Wheel, destroyed on rebuild
}

// BuildWedge generates the annular wedge geometry for one slot of a
// wheel with slotCount slots. Slot 0 straddles the top of the circle
// and slots advance from there in equal spans.
//
// The vertex budget is shared across all slots; each wedge gets
// budget/slotCount arc samples, with a floor of one so a starved
// budget still yields a minimal two-triangle wedge.
func BuildWedge(slot, slotCount int, cfg Config) Wedge {
	width := 2 * math.Pi / float64(slotCount)
	start := width*float64(slot) + math.Pi/2 - width/2

	steps := cfg.VertexBudget / slotCount
	if steps < 1 {
		steps = 1
	}

	mid := start + width/2
	midDir := geometry.Direction(mid)
	pivot := geometry.NewVector3(midDir.X, midDir.Y, 0).Mul(cfg.HighlightDistance)

	mesh := Mesh{
		Vertices:  make([]geometry.Vector3, 0, 2*(steps+1)),
		Normals:   make([]geometry.Vector3, 0, 2*(steps+1)),
		Triangles: make([]int, 0, 6*steps),
	}

	// Two vertices per arc sample: far rim first, near rim second.
	// Positions are relative to the pivot so the visual can sit there.
	up := geometry.NewVector3(0, 0, 1)
	for s := 0; s <= steps; s++ {
		angle := start + width*float64(s)/float64(steps)
		dir := geometry.NewVector3(math.Cos(angle), math.Sin(angle), 0)
		mesh.Vertices = append(mesh.Vertices,
			dir.Mul(cfg.FarRadius).Sub(pivot),
			dir.Mul(cfg.NearRadius).Sub(pivot))
		mesh.Normals = append(mesh.Normals, up, up)
	}

	// Quad strip: each adjacent sample pair closes into two triangles.
	for k := 0; k < steps; k++ {
		base := 2 * k
		mesh.Triangles = append(mesh.Triangles,
			base, base+1, base+2,
			base+1, base+3, base+2)
	}

	iconPos := geometry.NewVector3(midDir.X, midDir.Y, 0).
		Mul(cfg.IconRadius).
		Sub(pivot).
		Add(geometry.NewVector3(0, 0, cfg.IconLift))
	labelPos := geometry.NewVector3(midDir.X, midDir.Y, 0).
		Mul(cfg.IconRadius).
		Sub(pivot).
		Add(geometry.NewVector3(0, 0, cfg.LabelLift))

	iconTransform := IdentityTransform()
	iconTransform.Position = iconPos
	labelTransform := IdentityTransform()
	labelTransform.Position = labelPos

	return Wedge{
		Slot:           slot,
		StartAngle:     start,
		Width:          width,
		Boundary:       geometry.Direction(start),
		Pivot:          pivot,
		Mesh:           mesh,
		IconTransform:  iconTransform,
		LabelTransform: labelTransform,
	}
}
