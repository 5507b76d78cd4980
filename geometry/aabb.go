package geometry

// Aabb is an axis-aligned bounding box in document space.
// Mins is the top-left corner, Maxs the bottom-right corner
// (Y grows downwards).
type Aabb struct {
	Mins Vec2 `json:"mins"`
	Maxs Vec2 `json:"maxs"`
}

// NewAabb creates an Aabb from two corners.
func NewAabb(mins, maxs Vec2) Aabb {
	return Aabb{Mins: mins, Maxs: maxs}
}

// AabbFromSize creates an Aabb with Mins at the origin and the given extents.
func AabbFromSize(w, h float64) Aabb {
	return Aabb{Maxs: Vec2{X: w, Y: h}}
}

// Extents returns the size of the box per axis.
func (a Aabb) Extents() Vec2 {
	return a.Maxs.Sub(a.Mins)
}

// Width returns the horizontal extent.
func (a Aabb) Width() float64 {
	return a.Maxs.X - a.Mins.X
}

// Height returns the vertical extent.
func (a Aabb) Height() float64 {
	return a.Maxs.Y - a.Mins.Y
}

// Center returns the midpoint of the box.
func (a Aabb) Center() Vec2 {
	return a.Mins.Add(a.Maxs).Mul(0.5)
}

// Union returns the smallest Aabb containing both boxes.
func (a Aabb) Union(b Aabb) Aabb {
	return Aabb{
		Mins: a.Mins.Min(b.Mins),
		Maxs: a.Maxs.Max(b.Maxs),
	}
}

// Intersection returns the overlapping region of two boxes.
// The result may be degenerate when the boxes do not overlap.
func (a Aabb) Intersection(b Aabb) Aabb {
	return Aabb{
		Mins: a.Mins.Max(b.Mins),
		Maxs: a.Maxs.Min(b.Maxs),
	}
}

// Ceil extends the box outwards to the next integer boundaries:
// Mins is floored, Maxs is ceiled.
func (a Aabb) Ceil() Aabb {
	return Aabb{Mins: a.Mins.Floor(), Maxs: a.Maxs.Ceil()}
}

// Loosened expands the box by the margin m on all sides.
func (a Aabb) Loosened(m float64) Aabb {
	d := Vec2{X: m, Y: m}
	return Aabb{Mins: a.Mins.Sub(d), Maxs: a.Maxs.Add(d)}
}

// EnsurePositive swaps the corners on any axis where Mins exceeds Maxs,
// so that the extents are non-negative.
func (a Aabb) EnsurePositive() Aabb {
	return Aabb{Mins: a.Mins.Min(a.Maxs), Maxs: a.Mins.Max(a.Maxs)}
}

// Translate returns the box moved by the offset.
func (a Aabb) Translate(offset Vec2) Aabb {
	return Aabb{Mins: a.Mins.Add(offset), Maxs: a.Maxs.Add(offset)}
}

// Scale returns the box with both corners scaled by s relative to the origin.
func (a Aabb) Scale(s float64) Aabb {
	return Aabb{Mins: a.Mins.Mul(s), Maxs: a.Maxs.Mul(s)}
}

// Contains reports whether the point lies inside the box (inclusive Mins,
// exclusive Maxs).
func (a Aabb) Contains(p Vec2) bool {
	return p.X >= a.Mins.X && p.X < a.Maxs.X &&
		p.Y >= a.Mins.Y && p.Y < a.Maxs.Y
}

// IsFinite reports whether all corners are finite numbers.
func (a Aabb) IsFinite() bool {
	return a.Mins.IsFinite() && a.Maxs.IsFinite()
}

// Valid reports whether the box is finite and has positive extents on
// both axes.
func (a Aabb) Valid() bool {
	return a.IsFinite() && a.Maxs.X > a.Mins.X && a.Maxs.Y > a.Mins.Y
}
