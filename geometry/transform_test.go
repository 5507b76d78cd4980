package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformApply(t *testing.T) {
	tr := Translation(V(3, 4))
	if got := tr.Apply(V(1, 1)); got != V(4, 5) {
		t.Errorf("translation apply = %v, want (4, 5)", got)
	}

	sc := Scaling(V(2, 3))
	if got := sc.Apply(V(1, 1)); got != V(2, 3) {
		t.Errorf("scaling apply = %v, want (2, 3)", got)
	}

	rot := Rotation(math.Pi / 2)
	if got := rot.Apply(V(1, 0)); !vecNear(got, V(0, 1)) {
		t.Errorf("rotation apply = %v, want (0, 1)", got)
	}
}

func TestTransformMulOrder(t *testing.T) {
	// t.Mul(other) applies other first.
	m := Translation(V(10, 0)).Mul(Scaling(V(2, 2)))
	if got := m.Apply(V(1, 1)); got != V(12, 2) {
		t.Errorf("scale-then-translate apply = %v, want (12, 2)", got)
	}

	m = Scaling(V(2, 2)).Mul(Translation(V(10, 0)))
	if got := m.Apply(V(1, 1)); got != V(22, 2) {
		t.Errorf("translate-then-scale apply = %v, want (22, 2)", got)
	}
}

func TestTransformIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("identity should be finite")
	}
	bad := Transform{A: math.NaN(), E: 1}
	if bad.IsFinite() {
		t.Error("NaN transform should not be finite")
	}
}

func TestRectangleBounds(t *testing.T) {
	a := NewAabb(V(2, 4), V(6, 10))
	r := RectFromAabb(a)

	if got := r.LocalBounds(); got != NewAabb(V(-2, -3), V(2, 3)) {
		t.Errorf("LocalBounds() = %v", got)
	}
	got := r.Bounds()
	if !vecNear(got.Mins, a.Mins) || !vecNear(got.Maxs, a.Maxs) {
		t.Errorf("Bounds() = %v, want %v", got, a)
	}
}

func TestRectangleRotatedBounds(t *testing.T) {
	// A 4x2 rectangle rotated 90 degrees around its center covers a
	// 2x4 axis-aligned hull.
	r := RectFromAabb(NewAabb(V(0, 0), V(4, 2)))
	r.Rotate(math.Pi/2, V(2, 1))

	got := r.Bounds()
	if !vecNear(got.Mins, V(1, -1)) || !vecNear(got.Maxs, V(3, 3)) {
		t.Errorf("rotated Bounds() = %v, want [(1,-1), (3,3)]", got)
	}
}

func TestRectangleTranslate(t *testing.T) {
	r := RectFromAabb(NewAabb(V(0, 0), V(2, 2)))
	r.Translate(V(5, -1))
	got := r.Bounds()
	if !vecNear(got.Mins, V(5, -1)) || !vecNear(got.Maxs, V(7, 1)) {
		t.Errorf("translated Bounds() = %v, want [(5,-1), (7,1)]", got)
	}
}
