package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gowheel/pkg/wheel"
)

func TestAnalyzeLayoutEmpty(t *testing.T) {
	result := AnalyzeLayout(nil, wheel.DefaultConfig())
	if len(result.Slots) != 0 || result.TotalSpan != 0 {
		t.Errorf("expected an empty layout, got %d slots spanning %v", len(result.Slots), result.TotalSpan)
	}
}

func TestAnalyzeLayoutCoversCircle(t *testing.T) {
	segments := []*wheel.Segment{
		wheel.NewSegment("menu", nil).At(wheel.PositionTop),
		wheel.NewSegment("back", nil).At(wheel.PositionBottom),
		wheel.NewSegment("tools", nil),
		wheel.NewSegment("help", nil),
	}

	result := AnalyzeLayout(segments, wheel.DefaultConfig())

	if len(result.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(result.Slots))
	}
	if math.Abs(result.TotalSpan-2*math.Pi) > 1e-9 {
		t.Errorf("total span %v, expected 2π", result.TotalSpan)
	}
	if result.Slots[0].Name != "menu" {
		t.Errorf("expected menu at slot 0, got %q", result.Slots[0].Name)
	}
	if result.Slots[2].Name != "back" {
		t.Errorf("expected back at slot 2, got %q", result.Slots[2].Name)
	}
}

func TestDegrees(t *testing.T) {
	if d := Degrees(math.Pi); math.Abs(d-180) > 1e-10 {
		t.Errorf("expected 180, got %v", d)
	}
}
