package wheel

import (
	"testing"
)

func names(segs []*Segment) []string {
	result := make([]string, len(segs))
	for i, s := range segs {
		result[i] = s.Name
	}
	return result
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArrangeEmpty(t *testing.T) {
	result := Arrange(nil, nil)
	if len(result) != 0 {
		t.Errorf("expected empty arrangement, got %d slots", len(result))
	}
}

func TestArrangeIsPermutation(t *testing.T) {
	for n := 1; n <= 8; n++ {
		segments := make([]*Segment, n)
		hints := []Position{PositionNone, PositionTop, PositionBottom, PositionLeft, PositionRight}
		for i := range segments {
			segments[i] = NewSegment(string(rune('a'+i)), nil).At(hints[i%len(hints)])
		}

		result := Arrange(segments, nil)
		if len(result) != n {
			t.Fatalf("n=%d: expected %d slots, got %d", n, n, len(result))
		}

		seen := make(map[*Segment]bool)
		for slot, seg := range result {
			if seg == nil {
				t.Fatalf("n=%d: slot %d left empty", n, slot)
			}
			if seen[seg] {
				t.Fatalf("n=%d: segment %q placed twice", n, seg.Name)
			}
			seen[seg] = true
		}
	}
}

func TestArrangePositionTable(t *testing.T) {
	tests := []struct {
		name string
		n    int
		hint Position
		slot int // expected slot, -1 for no preference
	}{
		{"top always wins slot 0", 1, PositionTop, 0},
		{"top with many segments", 6, PositionTop, 0},
		{"bottom at n/2", 5, PositionBottom, 2},
		{"bottom at n/2 even", 4, PositionBottom, 2},
		{"bottom needs company", 1, PositionBottom, -1},
		{"left at 1", 4, PositionLeft, 1},
		{"left needs four", 3, PositionLeft, -1},
		{"right at n-1", 5, PositionRight, 4},
		{"right needs four", 3, PositionRight, -1},
		{"none has no preference", 5, PositionNone, -1},
	}

	for _, tt := range tests {
		slot, ok := tt.hint.slotFor(tt.n)
		if tt.slot == -1 {
			if ok {
				t.Errorf("%s: expected no preference, got slot %d", tt.name, slot)
			}
			continue
		}
		if !ok || slot != tt.slot {
			t.Errorf("%s: expected slot %d, got %d (ok=%v)", tt.name, tt.slot, slot, ok)
		}
	}
}

func TestArrangeHintedPlacement(t *testing.T) {
	a := NewSegment("a", nil)
	b := NewSegment("b", nil).At(PositionBottom)
	c := NewSegment("c", nil).At(PositionTop)
	d := NewSegment("d", nil)

	result := Arrange([]*Segment{a, b, c, d}, nil)
	expected := []string{"c", "a", "b", "d"}
	if !sameNames(names(result), expected) {
		t.Errorf("expected %v, got %v", expected, names(result))
	}
}

func TestArrangeConflictFirstWins(t *testing.T) {
	first := NewSegment("first", nil).At(PositionTop)
	second := NewSegment("second", nil).At(PositionTop)

	result := Arrange([]*Segment{first, second}, nil)
	if result[0] != first {
		t.Errorf("expected first-added claimant in slot 0, got %q", result[0].Name)
	}
	if result[1] != second {
		t.Errorf("expected demoted claimant in first open slot, got %q", result[1].Name)
	}
}

func TestArrangeConflictDoesNotRetry(t *testing.T) {
	// The demoted segment falls back to insertion-order placement, it
	// never claims another preferred slot.
	a := NewSegment("a", nil).At(PositionBottom)
	b := NewSegment("b", nil).At(PositionBottom)
	c := NewSegment("c", nil)
	d := NewSegment("d", nil)

	result := Arrange([]*Segment{a, b, c, d}, nil)
	expected := []string{"b", "c", "a", "d"}
	if !sameNames(names(result), expected) {
		t.Errorf("expected %v, got %v", expected, names(result))
	}
}

func TestArrangeSingleSegmentIgnoresHint(t *testing.T) {
	for _, hint := range []Position{PositionNone, PositionTop, PositionLeft, PositionRight, PositionBottom} {
		seg := NewSegment("only", nil).At(hint)
		result := Arrange([]*Segment{seg}, nil)
		if len(result) != 1 || result[0] != seg {
			t.Errorf("hint %v: expected the lone segment in slot 0", hint)
		}
	}
}
