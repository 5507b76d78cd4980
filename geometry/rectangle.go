package geometry

// Rectangle is a general affine placement in document space: an
// origin-centred box of the given extents, positioned by an affine
// transform carrying translation, rotation and non-uniform scale.
//
// Unlike Aabb, a Rectangle can describe a rotated or sheared target
// region, which is what an image placed on the canvas needs.
type Rectangle struct {
	Extents   Vec2      `json:"extents"`
	Transform Transform `json:"transform"`
}

// RectFromAabb creates an axis-aligned Rectangle covering the box:
// the extents match the box and the transform is a pure translation
// to its center.
func RectFromAabb(a Aabb) Rectangle {
	return Rectangle{
		Extents:   a.Extents(),
		Transform: Translation(a.Center()),
	}
}

// LocalBounds returns the untransformed box, centred at the origin.
func (r Rectangle) LocalBounds() Aabb {
	half := r.Extents.Mul(0.5)
	return Aabb{Mins: half.Neg(), Maxs: half}
}

// Bounds returns the axis-aligned hull of the transformed rectangle.
func (r Rectangle) Bounds() Aabb {
	local := r.LocalBounds()
	corners := [4]Vec2{
		{X: local.Mins.X, Y: local.Mins.Y},
		{X: local.Maxs.X, Y: local.Mins.Y},
		{X: local.Mins.X, Y: local.Maxs.Y},
		{X: local.Maxs.X, Y: local.Maxs.Y},
	}
	first := r.Transform.Apply(corners[0])
	bounds := Aabb{Mins: first, Maxs: first}
	for _, c := range corners[1:] {
		p := r.Transform.Apply(c)
		bounds.Mins = bounds.Mins.Min(p)
		bounds.Maxs = bounds.Maxs.Max(p)
	}
	return bounds
}

// Translate moves the rectangle by the offset.
func (r *Rectangle) Translate(offset Vec2) {
	r.Transform = Translation(offset).Mul(r.Transform)
}

// Rotate rotates the rectangle by angle (radians) around center.
func (r *Rectangle) Rotate(angle float64, center Vec2) {
	r.Transform = Translation(center).
		Mul(Rotation(angle)).
		Mul(Translation(center.Neg())).
		Mul(r.Transform)
}

// Scale scales the rectangle relative to the document origin.
func (r *Rectangle) Scale(s Vec2) {
	r.Transform = Scaling(s).Mul(r.Transform)
}

// Valid reports whether the placement is finite and non-degenerate.
func (r Rectangle) Valid() bool {
	return r.Extents.IsFinite() && r.Extents.X > 0 && r.Extents.Y > 0 &&
		r.Transform.IsFinite() && r.Transform.Det() != 0
}
