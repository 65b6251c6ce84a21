package wheel

import (
	"log/slog"

	"github.com/philipparndt/gowheel/pkg/geometry"
)

// Visual is an opaque handle to a renderable scene object, created and
// interpreted by the Host
type Visual any

// Material is an opaque handle to a surface appearance, interpreted by
// the Host
type Material any

// Host abstracts the scene layer that displays the wheel. The wheel
// calls into it to create, place and destroy visuals; it never holds
// any scene state of its own beyond the handles the Host returns.
//
// Destroying a visual must also destroy every visual parented to it;
// the wheel parents icons and labels to their wedge visual and relies
// on that when it tears a generation down.
type Host interface {
	// CreateObject instantiates an empty renderable node
	CreateObject() Visual

	// AttachMesh binds generated geometry to a visual for display
	AttachMesh(v Visual, mesh Mesh, material Material)

	SetParent(child, parent Visual)
	SetTransform(v Visual, t Transform)
	SetVisible(v Visual, visible bool)
	Destroy(v Visual)

	// CreateIcon instantiates a glyph visual under parent
	CreateIcon(parent Visual, icon Icon, t Transform) Visual

	// CreateLabel instantiates a text visual under parent
	CreateLabel(parent Visual, text string, t Transform) Visual
}

// Wheel is a circular, segmented selection widget. It owns the segment
// collection, rebuilds all derived wedge state on every mutation, and
// routes pointer queries to the sector hit-test.
//
// A Wheel is not safe for concurrent use; it expects a single owning
// goroutine, typically the host's frame loop.
type Wheel struct {
	host     Host
	cfg      Config
	material Material
	log      *slog.Logger

	root Visual

	// segments holds insertion order; wedges and boundaries are
	// slot-ordered and always rebuilt together as one unit.
	segments    []*Segment
	wedges      []*Wedge
	boundaries  []geometry.Vector2
	active      bool
	highlighted *Wedge
}

// New creates an empty wheel attached to the given host. The material
// is handed through to AttachMesh untouched and may be nil, as may the
// logger.
func New(host Host, cfg Config, material Material, log *slog.Logger) *Wheel {
	if log == nil {
		log = slog.Default()
	}
	return &Wheel{
		host:     host,
		cfg:      cfg,
		material: material,
		log:      log,
		root:     host.CreateObject(),
	}
}

// Root returns the visual all wedge visuals are parented to
func (w *Wheel) Root() Visual {
	return w.root
}

// Config returns the wheel's current appearance settings
func (w *Wheel) Config() Config {
	return w.cfg
}

// Segments returns the segments in insertion order
func (w *Wheel) Segments() []*Segment {
	return w.segments
}

// Wedges returns the derived wedges in slot order
func (w *Wheel) Wedges() []*Wedge {
	return w.wedges
}

// Boundaries returns the slot boundary directions, index-aligned with
// Wedges
func (w *Wheel) Boundaries() []geometry.Vector2 {
	return w.boundaries
}

// AddSegment appends one segment and rebuilds the wheel. Adding many
// segments one by one rebuilds once per call; use AddSegments to batch.
func (w *Wheel) AddSegment(seg *Segment) {
	w.segments = append(w.segments, seg)
	w.rebuild()
}

// AddSegments appends a batch of segments with a single rebuild
func (w *Wheel) AddSegments(segs ...*Segment) {
	if len(segs) == 0 {
		return
	}
	w.segments = append(w.segments, segs...)
	w.rebuild()
}

// RemoveSegment removes the first segment with the given name and
// rebuilds. An unknown name is reported as a warning and changes
// nothing.
func (w *Wheel) RemoveSegment(name string) {
	for i, seg := range w.segments {
		if seg.Name == name {
			w.segments = append(w.segments[:i], w.segments[i+1:]...)
			w.rebuild()
			return
		}
	}
	w.log.Warn("cannot remove segment, name not found", "name", name)
}

// Reset destroys all wedge visuals and clears the wheel back to empty
func (w *Wheel) Reset() {
	w.destroyWedges()
	w.segments = nil
	w.wedges = nil
	w.boundaries = nil
	w.highlighted = nil
}

// Show makes all wedge visuals visible and enables selection
func (w *Wheel) Show() {
	w.setActive(true)
}

// Hide hides all wedge visuals and disables selection
func (w *Wheel) Hide() {
	w.setActive(false)
}

// IsActive reports whether the wheel is currently shown
func (w *Wheel) IsActive() bool {
	return w.active
}

func (w *Wheel) setActive(active bool) {
	w.active = active
	for _, wd := range w.wedges {
		w.host.SetVisible(wd.visual, active)
	}
}

// Reconfigure swaps the appearance settings and rebuilds all wedges
func (w *Wheel) Reconfigure(cfg Config) {
	w.cfg = cfg
	w.rebuild()
}

// Highlight scales up the wedge under the given point, expressed
// relative to the wheel's center, and restores the previous highlight.
// A point outside every sector just clears the highlight.
func (w *Wheel) Highlight(point geometry.Vector2) {
	if w.highlighted != nil {
		w.host.SetTransform(w.highlighted.visual, uniformScale(w.highlighted.Pivot, 1))
		w.highlighted = nil
	}

	slot := Locate(point, w.boundaries)
	if slot == NoSlot {
		return
	}

	wd := w.wedges[slot]
	w.host.SetTransform(wd.visual, uniformScale(wd.Pivot, w.cfg.HighlightScale))
	w.highlighted = wd
}

// Highlighted returns the currently highlighted wedge, or nil
func (w *Wheel) Highlighted() *Wedge {
	return w.highlighted
}

// Select invokes the action of the segment under the given point. It
// does nothing while the wheel is hidden, and a point outside every
// sector is a silent no-op.
func (w *Wheel) Select(point geometry.Vector2) {
	if !w.active {
		return
	}

	slot := Locate(point, w.boundaries)
	if slot == NoSlot {
		return
	}

	seg := w.wedges[slot].Segment
	if seg.Action == nil {
		w.log.Warn("segment has no action bound", "name", seg.Name, "slot", slot)
		return
	}
	seg.Action()
}

// rebuild regenerates every wedge and boundary direction from the
// current segment list. The previous generation of visuals is
// destroyed first; wedges and boundaries never reflect different
// segment sets.
func (w *Wheel) rebuild() {
	w.destroyWedges()
	w.highlighted = nil

	ordered := Arrange(w.segments, w.log)
	n := len(ordered)
	w.wedges = make([]*Wedge, 0, n)
	w.boundaries = make([]geometry.Vector2, 0, n)

	for slot, seg := range ordered {
		wd := BuildWedge(slot, n, w.cfg)
		wd.Segment = seg

		v := w.host.CreateObject()
		w.host.AttachMesh(v, wd.Mesh, w.material)
		w.host.SetParent(v, w.root)
		w.host.SetTransform(v, uniformScale(wd.Pivot, 1))
		w.host.SetVisible(v, w.active)

		if seg.Icon != nil {
			w.host.CreateIcon(v, seg.Icon, wd.IconTransform)
		}
		if seg.ShowLabel && seg.Name != "" {
			w.host.CreateLabel(v, seg.Name, wd.LabelTransform)
		}

		wd.visual = v
		w.wedges = append(w.wedges, &wd)
		w.boundaries = append(w.boundaries, wd.Boundary)
	}

	w.log.Debug("rebuilt wheel", "segments", n)
}

func (w *Wheel) destroyWedges() {
	for _, wd := range w.wedges {
		w.host.Destroy(wd.visual)
	}
}
