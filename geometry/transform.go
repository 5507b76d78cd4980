package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Transform represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation transform.
func Translation(offset Vec2) Transform {
	return Transform{
		A: 1, B: 0, C: offset.X,
		D: 0, E: 1, F: offset.Y,
	}
}

// Scaling creates a (possibly non-uniform) scaling transform.
func Scaling(s Vec2) Transform {
	return Transform{
		A: s.X, B: 0, C: 0,
		D: 0, E: s.Y, F: 0,
	}
}

// Rotation creates a rotation transform (angle in radians).
func Rotation(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Mul multiplies two transforms (t * other). The resulting transform
// applies other first, then t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply applies the transformation to a point.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Offset returns the translation component of the transform.
func (t Transform) Offset() Vec2 {
	return Vec2{X: t.C, Y: t.F}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.A*t.E - t.B*t.D
}

// IsIdentity returns true if the transform is the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// IsFinite reports whether all coefficients are finite numbers.
func (t Transform) IsFinite() bool {
	for _, c := range [6]float64{t.A, t.B, t.C, t.D, t.E, t.F} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Aff3 converts the transform to the x/image affine representation
// used by golang.org/x/image/draw.
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
}
