package wheel

import (
	"math"
	"testing"

	"github.com/philipparndt/gowheel/pkg/geometry"
)

func boundariesFor(n int) []geometry.Vector2 {
	result := make([]geometry.Vector2, n)
	for slot := 0; slot < n; slot++ {
		result[slot] = BuildWedge(slot, n, DefaultConfig()).Boundary
	}
	return result
}

func TestLocateEmpty(t *testing.T) {
	if slot := Locate(geometry.NewVector2(1, 0), nil); slot != NoSlot {
		t.Errorf("expected NoSlot with no boundaries, got %d", slot)
	}
}

func TestLocateSingleSegmentOwnsCircle(t *testing.T) {
	boundaries := boundariesFor(1)

	// One direction cannot bound a sector, so every non-origin point
	// resolves to slot 0, even opposite the lone segment.
	for angle := 0.0; angle < 2*math.Pi; angle += math.Pi / 7 {
		if slot := Locate(geometry.Direction(angle), boundaries); slot != 0 {
			t.Errorf("angle %v: expected slot 0, got %d", angle, slot)
		}
	}
}

func TestLocateOriginIsNowhere(t *testing.T) {
	for n := 1; n <= 6; n++ {
		if slot := Locate(geometry.Vector2{}, boundariesFor(n)); slot != NoSlot {
			t.Errorf("n=%d: expected NoSlot at the origin, got %d", n, slot)
		}
	}
}

func TestLocateMidpointRoundTrip(t *testing.T) {
	for n := 1; n <= 12; n++ {
		boundaries := boundariesFor(n)
		for slot := 0; slot < n; slot++ {
			wd := BuildWedge(slot, n, DefaultConfig())
			mid := geometry.Direction(wd.StartAngle + wd.Width/2)
			if got := Locate(mid, boundaries); got != slot {
				t.Errorf("n=%d: midpoint of slot %d resolved to %d", n, slot, got)
			}
		}
	}
}

func TestLocateIgnoresDistance(t *testing.T) {
	boundaries := boundariesFor(6)
	wd := BuildWedge(4, 6, DefaultConfig())
	mid := geometry.Direction(wd.StartAngle + wd.Width/2)

	for _, scale := range []float64{0.001, 0.5, 1, 250, 1e6} {
		if got := Locate(mid.Mul(scale), boundaries); got != 4 {
			t.Errorf("scale %v: expected slot 4, got %d", scale, got)
		}
	}
}

func TestLocateIsTotal(t *testing.T) {
	// Every direction away from exact boundaries resolves to exactly
	// one slot.
	for n := 2; n <= 9; n++ {
		boundaries := boundariesFor(n)
		samples := 360
		for s := 0; s < samples; s++ {
			angle := 2 * math.Pi * (float64(s) + 0.41) / float64(samples)
			point := geometry.Direction(angle)

			matches := 0
			for i, start := range boundaries {
				end := boundaries[(i+1)%len(boundaries)]
				if !start.Clockwise(point) && end.Clockwise(point) {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("n=%d angle=%v: %d sectors matched", n, angle, matches)
			}
			if Locate(point, boundaries) == NoSlot {
				t.Fatalf("n=%d angle=%v: expected a slot", n, angle)
			}
		}
	}
}

func TestLocateTwoHalves(t *testing.T) {
	boundaries := boundariesFor(2)

	if slot := Locate(geometry.NewVector2(0, 1), boundaries); slot != 0 {
		t.Errorf("top point: expected slot 0, got %d", slot)
	}
	if slot := Locate(geometry.NewVector2(0, -1), boundaries); slot != 1 {
		t.Errorf("bottom point: expected slot 1, got %d", slot)
	}
}
