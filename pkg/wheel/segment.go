package wheel

// Action is a zero-argument callback invoked when a segment is selected
type Action func()

// Icon is an opaque handle to a 2D glyph asset. The wheel never
// interprets it; the Host decides how to display it.
type Icon any

// Position is a coarse directional placement hint for a segment
type Position int

const (
	PositionNone Position = iota
	PositionTop
	PositionLeft
	PositionRight
	PositionBottom
)

// String returns a human-readable name for the position hint
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// slotFor resolves the hint to a concrete slot index on a wheel of n
// segments. Hints that need more segments than n provides resolve to
// no preference: Bottom needs at least 2, Left and Right at least 4.
func (p Position) slotFor(n int) (int, bool) {
	switch p {
	case PositionTop:
		return 0, true
	case PositionBottom:
		if n > 1 {
			return n / 2, true
		}
	case PositionLeft:
		if n > 3 {
			return 1, true
		}
	case PositionRight:
		if n > 3 {
			return n - 1, true
		}
	}
	return 0, false
}

// Segment binds a named action, an icon and an optional label to one
// spot on the wheel. Segments are immutable once handed to a Wheel.
type Segment struct {
	Name      string   // identifier used for removal; may be empty
	Action    Action   // invoked on selection; nil actions are never invoked
	Icon      Icon     // optional glyph asset
	ShowLabel bool     // render the name as a text label
	Preferred Position // placement hint
}

// NewSegment creates a segment with the given name and action
func NewSegment(name string, action Action) *Segment {
	return &Segment{Name: name, Action: action}
}

// WithIcon attaches an icon asset to the segment
func (s *Segment) WithIcon(icon Icon) *Segment {
	s.Icon = icon
	return s
}

// WithLabel enables the text label for the segment
func (s *Segment) WithLabel() *Segment {
	s.ShowLabel = true
	return s
}

// At sets the placement hint for the segment
func (s *Segment) At(p Position) *Segment {
	s.Preferred = p
	return s
}
