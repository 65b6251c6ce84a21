package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gowheel/pkg/geometry"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

// visualNode is a retained scene object backing a wheel.Visual handle
type visualNode struct {
	parent    *visualNode
	mesh      wheel.Mesh
	hasMesh   bool
	transform wheel.Transform
	visible   bool
	destroyed bool
	text      string
	isLabel   bool
	icon      wheel.Icon
	isIcon    bool
}

// world accumulates the transforms up the parent chain
func (n *visualNode) world() (geometry.Vector3, geometry.Vector3) {
	if n.parent == nil {
		return n.transform.Position, n.transform.Scale
	}
	parentPos, parentScale := n.parent.world()
	pos := parentPos.Add(n.transform.Position.Scale(parentScale))
	return pos, parentScale.Scale(n.transform.Scale)
}

func (n *visualNode) shown() bool {
	if n.destroyed || !n.visible {
		return false
	}
	if n.parent == nil {
		return true
	}
	return n.parent.shown()
}

// RenderHost implements wheel.Host on top of raylib. It retains the
// scene nodes the wheel creates and redraws them each frame.
type RenderHost struct {
	nodes []*visualNode

	// viewport mapping, updated each frame before drawing
	center rl.Vector2
	ppu    float64 // pixels per wheel-space unit
}

// NewRenderHost creates an empty render host
func NewRenderHost() *RenderHost {
	return &RenderHost{}
}

// CreateObject instantiates an empty scene node
func (h *RenderHost) CreateObject() wheel.Visual {
	n := &visualNode{transform: wheel.IdentityTransform(), visible: true}
	h.nodes = append(h.nodes, n)
	return n
}

// AttachMesh binds wedge geometry to a node
func (h *RenderHost) AttachMesh(v wheel.Visual, mesh wheel.Mesh, material wheel.Material) {
	n := v.(*visualNode)
	n.mesh = mesh
	n.hasMesh = true
}

// SetParent reparents a node
func (h *RenderHost) SetParent(child, parent wheel.Visual) {
	child.(*visualNode).parent = parent.(*visualNode)
}

// SetTransform places a node relative to its parent
func (h *RenderHost) SetTransform(v wheel.Visual, t wheel.Transform) {
	v.(*visualNode).transform = t
}

// SetVisible toggles a node
func (h *RenderHost) SetVisible(v wheel.Visual, visible bool) {
	v.(*visualNode).visible = visible
}

// Destroy removes a node and everything parented to it
func (h *RenderHost) Destroy(v wheel.Visual) {
	root := v.(*visualNode)
	root.destroyed = true
	for _, n := range h.nodes {
		for p := n.parent; p != nil; p = p.parent {
			if p == root {
				n.destroyed = true
				break
			}
		}
	}

	alive := h.nodes[:0]
	for _, n := range h.nodes {
		if !n.destroyed {
			alive = append(alive, n)
		}
	}
	h.nodes = alive
}

// CreateIcon instantiates an icon node under parent. The demo treats
// color icons as filled dots and everything else as a neutral dot.
func (h *RenderHost) CreateIcon(parent wheel.Visual, icon wheel.Icon, t wheel.Transform) wheel.Visual {
	n := h.CreateObject().(*visualNode)
	n.parent = parent.(*visualNode)
	n.transform = t
	n.icon = icon
	n.isIcon = true
	return n
}

// CreateLabel instantiates a text node under parent
func (h *RenderHost) CreateLabel(parent wheel.Visual, text string, t wheel.Transform) wheel.Visual {
	n := h.CreateObject().(*visualNode)
	n.parent = parent.(*visualNode)
	n.transform = t
	n.text = text
	n.isLabel = true
	return n
}

// SetViewport updates the wheel-space to screen mapping for this frame
func (h *RenderHost) SetViewport(center rl.Vector2, pixelsPerUnit float64) {
	h.center = center
	h.ppu = pixelsPerUnit
}

// project maps a wheel-space position to screen coordinates, flipping
// the Y axis (wheel space is Y-up, screen space is Y-down)
func (h *RenderHost) project(p geometry.Vector3) rl.Vector2 {
	return rl.Vector2{
		X: h.center.X + float32(p.X*h.ppu),
		Y: h.center.Y - float32(p.Y*h.ppu),
	}
}

// Unproject maps screen coordinates back to a circle-centered point
func (h *RenderHost) Unproject(screen rl.Vector2) geometry.Vector2 {
	if h.ppu == 0 {
		return geometry.Vector2{}
	}
	return geometry.NewVector2(
		float64(screen.X-h.center.X)/h.ppu,
		-float64(screen.Y-h.center.Y)/h.ppu)
}

// Draw renders all visible nodes for the current frame
func (h *RenderHost) Draw(wireframe bool) {
	for _, n := range h.nodes {
		if !n.shown() {
			continue
		}
		pos, scale := n.world()

		switch {
		case n.hasMesh:
			h.drawMesh(n, pos, scale, wireframe)
		case n.isLabel:
			screen := h.project(pos)
			width := rl.MeasureText(n.text, 18)
			rl.DrawText(n.text, int32(screen.X)-width/2, int32(screen.Y)-9, 18, rl.RayWhite)
		case n.isIcon:
			fill := rl.NewColor(200, 200, 200, 255)
			if c, ok := n.icon.(color.RGBA); ok {
				fill = rl.NewColor(c.R, c.G, c.B, c.A)
			}
			rl.DrawCircleV(h.project(pos), 9, fill)
		}
	}
}

// drawMesh fills a wedge mesh triangle by triangle. A node scaled
// above baseline is the highlighted wedge and gets the accent fill.
func (h *RenderHost) drawMesh(n *visualNode, pos, scale geometry.Vector3, wireframe bool) {
	fill := rl.NewColor(45, 55, 75, 255)
	edge := rl.NewColor(90, 105, 135, 255)
	if scale.X > 1 {
		fill = rl.NewColor(80, 100, 145, 255)
		edge = rl.NewColor(255, 200, 60, 255)
	}

	tris := n.mesh.Triangles
	for t := 0; t+2 < len(tris); t += 3 {
		a := h.project(pos.Add(n.mesh.Vertices[tris[t]].Scale(scale)))
		b := h.project(pos.Add(n.mesh.Vertices[tris[t+1]].Scale(scale)))
		c := h.project(pos.Add(n.mesh.Vertices[tris[t+2]].Scale(scale)))

		// The Y flip turns the mesh's winding counter-clockwise in
		// screen space, which is what raylib fills.
		rl.DrawTriangle(a, b, c, fill)
		if wireframe {
			rl.DrawTriangleLines(a, b, c, edge)
		}
	}
}
