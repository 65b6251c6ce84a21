package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gowheel/pkg/geometry"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

// node is a retained scene object backing a wheel.Visual handle
type node struct {
	parent    *node
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

// world accumulates the transforms up the parent chain and returns
// the node's position and componentwise scale in wheel space
func (n *node) world() (geometry.Vector3, geometry.Vector3) {
	if n.parent == nil {
		return n.transform.Position, n.transform.Scale
	}
	parentPos, parentScale := n.parent.world()
	pos := parentPos.Add(n.transform.Position.Scale(parentScale))
	return pos, parentScale.Scale(n.transform.Scale)
}

// shown reports whether the node and all its ancestors are visible
func (n *node) shown() bool {
	if n.destroyed || !n.visible {
		return false
	}
	if n.parent == nil {
		return true
	}
	return n.parent.shown()
}

// WheelViewer is a fyne widget that displays a control wheel and
// routes pointer events back to it. It implements wheel.Host, so the
// wheel is constructed on top of it:
//
//	v := viewer.NewWheelViewer()
//	w := wheel.New(v, cfg, nil, nil)
//	v.SetWheel(w)
type WheelViewer struct {
	widget.BaseWidget

	wheel *wheel.Wheel
	nodes []*node

	width  float64
	height float64

	lines   []*canvas.Line
	texts   []*canvas.Text
	markers []*canvas.Circle

	onSelect func(name string)
}

// NewWheelViewer creates an empty viewer; attach a wheel with SetWheel
func NewWheelViewer() *WheelViewer {
	v := &WheelViewer{}
	v.ExtendBaseWidget(v)
	return v
}

// SetWheel attaches the wheel this viewer displays
func (v *WheelViewer) SetWheel(w *wheel.Wheel) {
	v.wheel = w
}

// SetOnSelect sets a callback fired after a tap selected a segment
func (v *WheelViewer) SetOnSelect(callback func(name string)) {
	v.onSelect = callback
}

// wheel.Host implementation. The viewer retains plain nodes and draws
// everything from scratch on each render pass.

// CreateObject instantiates an empty scene node
func (v *WheelViewer) CreateObject() wheel.Visual {
	n := &node{transform: wheel.IdentityTransform(), visible: true}
	v.nodes = append(v.nodes, n)
	return n
}

// AttachMesh binds wedge geometry to a node
func (v *WheelViewer) AttachMesh(vis wheel.Visual, mesh wheel.Mesh, material wheel.Material) {
	n := vis.(*node)
	n.mesh = mesh
	n.hasMesh = true
	v.Refresh()
}

// SetParent reparents a node
func (v *WheelViewer) SetParent(child, parent wheel.Visual) {
	child.(*node).parent = parent.(*node)
}

// SetTransform places a node relative to its parent
func (v *WheelViewer) SetTransform(vis wheel.Visual, t wheel.Transform) {
	vis.(*node).transform = t
	v.Refresh()
}

// SetVisible toggles a node
func (v *WheelViewer) SetVisible(vis wheel.Visual, visible bool) {
	vis.(*node).visible = visible
	v.Refresh()
}

// Destroy removes a node and everything parented to it
func (v *WheelViewer) Destroy(vis wheel.Visual) {
	root := vis.(*node)
	root.destroyed = true
	for _, n := range v.nodes {
		for p := n.parent; p != nil; p = p.parent {
			if p == root {
				n.destroyed = true
				break
			}
		}
	}
	v.compact()
	v.Refresh()
}

// CreateIcon instantiates an icon node under parent. Icons are opaque
// to the wheel; the viewer draws them as a filled dot, using the icon
// itself as the fill color when it is one.
func (v *WheelViewer) CreateIcon(parent wheel.Visual, icon wheel.Icon, t wheel.Transform) wheel.Visual {
	n := v.CreateObject().(*node)
	n.parent = parent.(*node)
	n.transform = t
	n.icon = icon
	n.isIcon = true
	return n
}

// CreateLabel instantiates a text node under parent
func (v *WheelViewer) CreateLabel(parent wheel.Visual, text string, t wheel.Transform) wheel.Visual {
	n := v.CreateObject().(*node)
	n.parent = parent.(*node)
	n.transform = t
	n.text = text
	n.isLabel = true
	return n
}

// compact drops destroyed nodes from the retained list
func (v *WheelViewer) compact() {
	alive := v.nodes[:0]
	for _, n := range v.nodes {
		if !n.destroyed {
			alive = append(alive, n)
		}
	}
	v.nodes = alive
}

// pixelsPerUnit maps wheel space to screen space, fitting the full
// wheel with a small margin
func (v *WheelViewer) pixelsPerUnit() float64 {
	if v.wheel == nil {
		return 1
	}
	size := v.width
	if v.height < size {
		size = v.height
	}
	far := v.wheel.Config().FarRadius * v.wheel.Config().HighlightScale
	if far <= 0 || size <= 0 {
		return 1
	}
	return size / (2.2 * far)
}

// project maps a wheel-space position to widget coordinates. The Y
// axis flips: wheel space is Y-up, screen space is Y-down.
func (v *WheelViewer) project(p geometry.Vector3) fyne.Position {
	ppu := v.pixelsPerUnit()
	return fyne.NewPos(
		float32(v.width/2+p.X*ppu),
		float32(v.height/2-p.Y*ppu))
}

// unproject maps widget coordinates back to a circle-centered point
func (v *WheelViewer) unproject(pos fyne.Position) geometry.Vector2 {
	ppu := v.pixelsPerUnit()
	return geometry.NewVector2(
		(float64(pos.X)-v.width/2)/ppu,
		-(float64(pos.Y)-v.height/2)/ppu)
}

// render regenerates all canvas primitives from the retained nodes
func (v *WheelViewer) render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = v.lines[:0]
	v.texts = v.texts[:0]
	v.markers = v.markers[:0]

	for _, n := range v.nodes {
		if !n.shown() {
			continue
		}
		pos, scale := n.world()

		switch {
		case n.hasMesh:
			highlighted := scale.X > 1
			v.renderMesh(n, pos, scale, highlighted)
		case n.isLabel:
			text := canvas.NewText(n.text, color.White)
			text.Alignment = fyne.TextAlignCenter
			text.TextSize = 13
			size := fyne.NewSize(120, 18)
			screen := v.project(pos)
			text.Resize(size)
			text.Move(fyne.NewPos(screen.X-size.Width/2, screen.Y-size.Height/2))
			v.texts = append(v.texts, text)
		case n.isIcon:
			fill := color.Color(color.RGBA{200, 200, 200, 255})
			if c, ok := n.icon.(color.Color); ok {
				fill = c
			}
			marker := canvas.NewCircle(fill)
			size := float32(10)
			screen := v.project(pos)
			marker.Resize(fyne.NewSize(size, size))
			marker.Move(fyne.NewPos(screen.X-size/2, screen.Y-size/2))
			v.markers = append(v.markers, marker)
		}
	}
}

// renderMesh draws the triangle edges of a wedge mesh
func (v *WheelViewer) renderMesh(n *node, pos, scale geometry.Vector3, highlighted bool) {
	stroke := color.Color(color.RGBA{130, 140, 160, 255})
	strokeWidth := float32(1)
	if highlighted {
		stroke = color.RGBA{255, 200, 60, 255}
		strokeWidth = 2
	}

	tris := n.mesh.Triangles
	for t := 0; t+2 < len(tris); t += 3 {
		corners := [3]fyne.Position{}
		for c := 0; c < 3; c++ {
			vertex := n.mesh.Vertices[tris[t+c]]
			corners[c] = v.project(pos.Add(vertex.Scale(scale)))
		}
		for c := 0; c < 3; c++ {
			line := canvas.NewLine(stroke)
			line.StrokeWidth = strokeWidth
			line.Position1 = corners[c]
			line.Position2 = corners[(c+1)%3]
			v.lines = append(v.lines, line)
		}
	}
}

// MouseIn implements desktop.Hoverable
func (v *WheelViewer) MouseIn(event *desktop.MouseEvent) {
	v.MouseMoved(event)
}

// MouseMoved highlights the wedge under the pointer
func (v *WheelViewer) MouseMoved(event *desktop.MouseEvent) {
	if v.wheel == nil {
		return
	}
	v.wheel.Highlight(v.unproject(event.Position))
	v.Refresh()
}

// MouseOut clears the highlight; the origin resolves to no sector
func (v *WheelViewer) MouseOut() {
	if v.wheel == nil {
		return
	}
	v.wheel.Highlight(geometry.Vector2{})
	v.Refresh()
}

// Tapped selects the wedge under the tap
func (v *WheelViewer) Tapped(event *fyne.PointEvent) {
	if v.wheel == nil {
		return
	}
	point := v.unproject(event.Position)
	v.wheel.Select(point)

	if v.onSelect != nil && v.wheel.IsActive() {
		if slot := wheel.Locate(point, v.wheel.Boundaries()); slot != wheel.NoSlot {
			v.onSelect(v.wheel.Wedges()[slot].Segment.Name)
		}
	}
}

// CreateRenderer creates the fyne renderer for the widget
func (v *WheelViewer) CreateRenderer() fyne.WidgetRenderer {
	return &wheelWidgetRenderer{viewer: v}
}

// wheelWidgetRenderer implements fyne.WidgetRenderer
type wheelWidgetRenderer struct {
	viewer  *WheelViewer
	objects []fyne.CanvasObject
}

func (r *wheelWidgetRenderer) Layout(size fyne.Size) {
	r.viewer.render(float64(size.Width), float64(size.Height))
}

func (r *wheelWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *wheelWidgetRenderer) Refresh() {
	r.viewer.render(r.viewer.width, r.viewer.height)

	r.objects = r.objects[:0]
	for _, line := range r.viewer.lines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range r.viewer.markers {
		r.objects = append(r.objects, marker)
	}
	for _, text := range r.viewer.texts {
		r.objects = append(r.objects, text)
	}
	canvas.Refresh(r.viewer)
}

func (r *wheelWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *wheelWidgetRenderer) Destroy() {}
