package geometry

import "math"

// Vec2 represents a 2D point or vector in document space.
type Vec2 struct {
	X, Y float64
}

// V is a convenience function to create a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// MulV returns the component-wise product of two vectors.
func (v Vec2) MulV(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Floor returns the vector with both components rounded down.
func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

// Ceil returns the vector with both components rounded up.
func (v Vec2) Ceil() Vec2 {
	return Vec2{X: math.Ceil(v.X), Y: math.Ceil(v.Y)}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y)}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
