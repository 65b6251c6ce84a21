package geometry

import (
	"math"
	"testing"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		angle    float64
		expected Vector2
	}{
		{0, NewVector2(1, 0)},
		{math.Pi / 2, NewVector2(0, 1)},
		{math.Pi, NewVector2(-1, 0)},
		{3 * math.Pi / 2, NewVector2(0, -1)},
	}

	for _, tt := range tests {
		result := Direction(tt.angle)
		if math.Abs(result.X-tt.expected.X) > 1e-10 || math.Abs(result.Y-tt.expected.Y) > 1e-10 {
			t.Errorf("Direction(%v) failed: expected %v, got %v", tt.angle, tt.expected, result)
		}
	}
}

func TestVector2Cross(t *testing.T) {
	v1 := NewVector2(1, 0)
	v2 := NewVector2(0, 1)

	if result := v1.Cross(v2); math.Abs(result-1) > 1e-10 {
		t.Errorf("Cross failed: expected 1, got %v", result)
	}
	if result := v2.Cross(v1); math.Abs(result+1) > 1e-10 {
		t.Errorf("Cross failed: expected -1, got %v", result)
	}
}

func TestVector2Clockwise(t *testing.T) {
	up := NewVector2(0, 1)
	right := NewVector2(1, 0)
	left := NewVector2(-1, 0)

	// Right is clockwise of up, left is not
	if !up.Clockwise(right) {
		t.Error("expected right to be clockwise of up")
	}
	if up.Clockwise(left) {
		t.Error("expected left to not be clockwise of up")
	}

	// A vector counts as clockwise of itself (boundary tie)
	if !up.Clockwise(up) {
		t.Error("expected a vector to be clockwise of itself")
	}
}

func TestVector2Angle(t *testing.T) {
	v := NewVector2(0, 1)
	if angle := v.Angle(); math.Abs(angle-math.Pi/2) > 1e-10 {
		t.Errorf("Angle failed: expected %v, got %v", math.Pi/2, angle)
	}
}

func TestVector2Normalize(t *testing.T) {
	v := NewVector2(3, 4)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1) > 1e-10 {
		t.Errorf("Normalize failed: expected unit length, got %v", normalized.Length())
	}
	if normalized.Normalize() == (Vector2{}) {
		t.Error("Normalize of non-zero vector should not be zero")
	}
	if (Vector2{}).Normalize() != (Vector2{}) {
		t.Error("Normalize of zero vector should be zero")
	}
}
