package scene

import (
	"testing"

	"github.com/sumonst21/rnote/geometry"
)

func pixelAt(tex *MemoryTexture, x, y int) [4]byte {
	i := y*tex.Stride() + x*4
	d := tex.Data()
	return [4]byte{d[i], d[i+1], d[i+2], d[i+3]}
}

func TestSoftwareRendererSolidFill(t *testing.T) {
	tex := solidTexture(t, 4, 4, 255, 0, 0, 255)
	node := NewTextureNode(tex, geometry.NewAabb(geometry.V(0, 0), geometry.V(4, 4)))

	r := NewSoftwareNodeRenderer(1)
	out, err := r.RenderTexture(node, nil)
	if err != nil {
		t.Fatalf("RenderTexture: %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("output %dx%d, want 4x4", out.Width(), out.Height())
	}
	if got := pixelAt(out, 2, 2); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("center pixel = %v, want opaque red", got)
	}
}

func TestSoftwareRendererPaintOrder(t *testing.T) {
	red := solidTexture(t, 2, 2, 255, 0, 0, 255)
	green := solidTexture(t, 2, 2, 0, 255, 0, 255)

	// Both cover [0,0]x[4,4]; green is appended later so it must win
	// in the overlap.
	node := NewContainerNode(
		NewTextureNode(red, geometry.NewAabb(geometry.V(0, 0), geometry.V(4, 4))),
		NewTextureNode(green, geometry.NewAabb(geometry.V(0, 0), geometry.V(4, 4))),
	)

	r := NewSoftwareNodeRenderer(1)
	out, err := r.RenderTexture(node, nil)
	if err != nil {
		t.Fatalf("RenderTexture: %v", err)
	}
	if got := pixelAt(out, 2, 2); got != [4]byte{0, 255, 0, 255} {
		t.Errorf("overlap pixel = %v, want the later (green) image", got)
	}
}

func TestSoftwareRendererTransform(t *testing.T) {
	red := solidTexture(t, 2, 2, 255, 0, 0, 255)
	child := NewTextureNode(red, geometry.NewAabb(geometry.V(0, 0), geometry.V(2, 2)))
	node := NewTransformNode(child, geometry.Translation(geometry.V(4, 4)))

	r := NewSoftwareNodeRenderer(1)
	viewport := geometry.NewAabb(geometry.V(0, 0), geometry.V(8, 8))
	out, err := r.RenderTexture(node, &viewport)
	if err != nil {
		t.Fatalf("RenderTexture: %v", err)
	}
	if got := pixelAt(out, 5, 5); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("translated pixel = %v, want opaque red", got)
	}
	if got := pixelAt(out, 1, 1); got != [4]byte{0, 0, 0, 0} {
		t.Errorf("pixel outside translated region = %v, want transparent", got)
	}
}

func TestSoftwareRendererViewportScale(t *testing.T) {
	tex := solidTexture(t, 2, 2, 0, 0, 255, 255)
	node := NewTextureNode(tex, geometry.NewAabb(geometry.V(0, 0), geometry.V(4, 4)))

	r := NewSoftwareNodeRenderer(2)
	out, err := r.RenderTexture(node, nil)
	if err != nil {
		t.Fatalf("RenderTexture: %v", err)
	}
	if out.Width() != 8 || out.Height() != 8 {
		t.Errorf("output %dx%d, want 8x8 at scale 2", out.Width(), out.Height())
	}
}

func TestCaptureNodeTextureNoRoot(t *testing.T) {
	tex := solidTexture(t, 1, 1, 255, 255, 255, 255)
	node := NewTextureNode(tex, geometry.NewAabb(geometry.V(0, 0), geometry.V(1, 1)))

	out, err := CaptureNodeTexture(WidgetOf(nil), node, nil)
	if err != nil {
		t.Fatalf("unattached widget must not be an error, got %v", err)
	}
	if out != nil {
		t.Fatal("unattached widget must yield no texture")
	}
}

func TestCaptureNodeTextureWithRoot(t *testing.T) {
	tex := solidTexture(t, 2, 2, 255, 0, 0, 255)
	node := NewTextureNode(tex, geometry.NewAabb(geometry.V(0, 0), geometry.V(2, 2)))

	w := WidgetOf(NewSoftwareRoot(1))
	out, err := CaptureNodeTexture(w, node, nil)
	if err != nil {
		t.Fatalf("CaptureNodeTexture: %v", err)
	}
	if out == nil {
		t.Fatal("attached widget must yield a texture")
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Errorf("texture %dx%d, want 2x2", out.Width(), out.Height())
	}
}
