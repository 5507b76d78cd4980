package render

import (
	"errors"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/sumonst21/rnote/geometry"
)

// stubBackend records the render request and fills the destination
// with a solid premultiplied color.
type stubBackend struct {
	doc    string
	bounds geometry.Aabb
	fill   [4]byte
	err    error
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Render(doc string, bounds geometry.Aabb, dst *image.RGBA) error {
	s.doc = doc
	s.bounds = bounds
	if s.err != nil {
		return s.err
	}
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		copy(dst.Pix[i:i+4], s.fill[:])
	}
	return nil
}

func imagePixel(img Image, x, y int) [4]byte {
	off := 4 * (y*img.PixelWidth + x)
	return [4]byte{img.Data[off], img.Data[off+1], img.Data[off+2], img.Data[off+3]}
}

func TestRenderSvgDimensions(t *testing.T) {
	stub := &stubBackend{fill: [4]byte{0, 0, 255, 255}}
	r := NewRasterizer(WithBackend(stub))

	svg := Svg{Data: `<rect width="10" height="10" fill="blue"/>`, Bounds: aabbFromSize(10, 10)}
	img, err := r.RenderSvg(svg, aabbFromSize(10, 10), 2.0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// Bounds grow to integer coordinates plus a half-unit margin per
	// side, then scale to pixels.
	if img.PixelWidth != 22 || img.PixelHeight != 22 {
		t.Errorf("pixel dimensions %dx%d, want 22x22", img.PixelWidth, img.PixelHeight)
	}
	wantBounds := geometry.NewAabb(geometry.V(-0.5, -0.5), geometry.V(10.5, 10.5))
	if got := img.Rect.Bounds(); !aabbNear(got, wantBounds, 1e-9) {
		t.Errorf("placement %+v, want %+v", got, wantBounds)
	}
	if stub.bounds != wantBounds {
		t.Errorf("backend received bounds %+v, want %+v", stub.bounds, wantBounds)
	}

	// The backend gets a standalone document sized to the normalized
	// bounds.
	for _, want := range []string{"<svg ", `viewBox="-0.5 -0.5 11 11"`, `width="11"`, `height="11"`} {
		if !strings.Contains(stub.doc, want) {
			t.Errorf("backend document missing %q:\n%s", want, stub.doc)
		}
	}

	if px := imagePixel(img, 11, 11); px != [4]byte{0, 0, 255, 255} {
		t.Errorf("center pixel = %v", px)
	}
}

func TestRenderSvgDegenerateBounds(t *testing.T) {
	stub := &stubBackend{}
	r := NewRasterizer(WithBackend(stub))

	svg := Svg{Data: "<g/>"}
	img, err := r.RenderSvg(svg, geometry.NewAabb(geometry.V(5, 5), geometry.V(5, 5)), 1.0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.PixelWidth < 1 || img.PixelHeight < 1 {
		t.Errorf("degenerate bounds produced %dx%d", img.PixelWidth, img.PixelHeight)
	}
	if err := img.Validate(); err != nil {
		t.Errorf("result invalid: %v", err)
	}
}

func TestRenderSvgInvalidInput(t *testing.T) {
	r := NewRasterizer(WithBackend(&stubBackend{}))
	svg := Svg{Data: "<g/>"}

	tests := []struct {
		name   string
		bounds geometry.Aabb
		scale  float64
	}{
		{"nan bounds", geometry.NewAabb(geometry.V(math.NaN(), 0), geometry.V(1, 1)), 1.0},
		{"inf bounds", geometry.NewAabb(geometry.V(0, 0), geometry.V(math.Inf(1), 1)), 1.0},
		{"zero scale", aabbFromSize(1, 1), 0},
		{"negative scale", aabbFromSize(1, 1), -2},
		{"nan scale", aabbFromSize(1, 1), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.RenderSvg(svg, tt.bounds, tt.scale); !errors.Is(err, ErrInvalidBounds) {
				t.Errorf("got %v, want ErrInvalidBounds", err)
			}
		})
	}
}

func TestRenderSvgOversized(t *testing.T) {
	r := NewRasterizer(WithBackend(&stubBackend{}))
	svg := Svg{Data: "<g/>"}
	_, err := r.RenderSvg(svg, aabbFromSize(20000, 10), 1.0)
	if !errors.Is(err, ErrSurfaceAllocation) {
		t.Errorf("got %v, want ErrSurfaceAllocation", err)
	}
}

func TestRenderSvgBackendError(t *testing.T) {
	stub := &stubBackend{err: errors.New("backend exploded")}
	r := NewRasterizer(WithBackend(stub))
	svg := Svg{Data: "<g/>"}
	_, err := r.RenderSvg(svg, aabbFromSize(1, 1), 1.0)
	if err == nil {
		t.Fatal("backend error not propagated")
	}
	// Any backend failure must carry the taxonomy sentinel, even when
	// the backend returns a plain error.
	if !errors.Is(err, ErrExternalRender) {
		t.Errorf("got %v, want ErrExternalRender", err)
	}
	if !strings.Contains(err.Error(), "backend exploded") {
		t.Errorf("backend message lost: %v", err)
	}
}

func TestRenderDrawFunc(t *testing.T) {
	r := NewRasterizer(WithBackend(&stubBackend{}))

	img, err := r.RenderDrawFunc(func(dc *gg.Context) error {
		dc.SetRGB(1, 0, 0)
		dc.DrawRectangle(0, 0, 10, 10)
		return dc.Fill()
	}, aabbFromSize(10, 10), 2.0)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if img.PixelWidth != 22 || img.PixelHeight != 22 {
		t.Fatalf("pixel dimensions %dx%d, want 22x22", img.PixelWidth, img.PixelHeight)
	}
	// Document point (5,5) lands inside the filled rectangle.
	if px := imagePixel(img, 11, 11); px != [4]byte{255, 0, 0, 255} {
		t.Errorf("center pixel = %v, want opaque red", px)
	}
	// The margin outside the drawn rectangle stays transparent.
	if px := imagePixel(img, 0, 0); px[3] != 0 {
		t.Errorf("margin pixel = %v, want transparent", px)
	}
}

func TestRenderDrawFuncError(t *testing.T) {
	r := NewRasterizer(WithBackend(&stubBackend{}))
	_, err := r.RenderDrawFunc(func(*gg.Context) error {
		return errors.New("draw failed")
	}, aabbFromSize(1, 1), 1.0)
	if !errors.Is(err, ErrExternalRender) {
		t.Errorf("got %v, want ErrExternalRender", err)
	}
}

func TestNewRasterizerDefaults(t *testing.T) {
	r := NewRasterizer()
	if r.Backend() == nil {
		t.Fatal("no default backend selected")
	}
	if r.Backend().Name() != BackendCanvas {
		t.Errorf("default backend %q, want %q", r.Backend().Name(), BackendCanvas)
	}

	r = NewRasterizer(WithBackendName(BackendRasterx))
	if r.Backend().Name() != BackendRasterx {
		t.Errorf("named selection got %q", r.Backend().Name())
	}

	r = NewRasterizer(WithBackendName("no-such-backend"))
	if r.Backend() == nil {
		t.Error("unknown name left no backend")
	}
}
