package geometry

import "math"

// Vector2 represents a 2D point or direction in the wheel's plane
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Direction returns the unit vector pointing at the given angle
// (radians, counter-clockwise from the positive X axis)
func Direction(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (z component of the 3D cross)
func (v Vector2) Cross(other Vector2) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Mul(1.0 / length)
}

// Angle returns the angle of the vector in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clockwise reports whether other lies clockwise of v, treating both
// as directions from the origin. Vectors exactly aligned with v count
// as clockwise, which gives boundary points a deterministic side.
func (v Vector2) Clockwise(other Vector2) bool {
	return -v.X*other.Y+v.Y*other.X >= 0
}
