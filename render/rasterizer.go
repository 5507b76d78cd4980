package render

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/sumonst21/rnote"
	"github.com/sumonst21/rnote/geometry"
)

// aaMarginUnits is the anti-aliasing safety margin added on each side
// of a rasterization target, in document units. Strokes touching the
// bounds edge keep their anti-aliased fringe inside the surface.
const aaMarginUnits = 0.5

// maxSurfaceSide is the largest pixel extent the surface allocator
// accepts per axis. It matches the texture size limit of common GPU
// backends, so every produced image remains uploadable.
const maxSurfaceSide = 16384

// Rasterizer converts vector fragments and draw procedures into
// Images at a given pixel density. It is a pure request/response
// converter: every call allocates its own drawing surface and returns
// an independently owned Image. Calls never retry; the caller decides
// whether to retry with adjusted bounds or scale.
type Rasterizer struct {
	backend VectorBackend
}

// RasterizerOption configures a Rasterizer during creation.
type RasterizerOption func(*Rasterizer)

// WithBackend selects a specific vector backend instance.
func WithBackend(b VectorBackend) RasterizerOption {
	return func(r *Rasterizer) {
		r.backend = b
	}
}

// WithBackendName selects a registered vector backend by name. An
// unknown name leaves the default selection in place.
func WithBackendName(name string) RasterizerOption {
	return func(r *Rasterizer) {
		if b := BackendByName(name); b != nil {
			r.backend = b
		}
	}
}

// NewRasterizer creates a Rasterizer. Without options it uses the
// best registered vector backend.
func NewRasterizer(opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.backend == nil {
		r.backend = DefaultBackend()
	}
	return r
}

// Backend returns the vector backend the rasterizer renders with.
func (r *Rasterizer) Backend() VectorBackend { return r.backend }

// normalizeTarget turns a document-space target into the surface
// placement and pixel dimensions: extents forced non-negative, grown
// to integer boundaries, expanded by the anti-aliasing margin, then
// scaled to pixels with round-to-nearest. Degenerate input bounds
// still yield at least one pixel per axis; non-finite bounds fail.
func normalizeTarget(bounds geometry.Aabb, scale float64) (geometry.Aabb, int, int, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return geometry.Aabb{}, 0, 0, fmt.Errorf("%w: scale %v", ErrInvalidBounds, scale)
	}
	nb := bounds.EnsurePositive().Ceil().Loosened(aaMarginUnits)
	if !nb.Valid() {
		return geometry.Aabb{}, 0, 0, fmt.Errorf("%w: %+v", ErrInvalidBounds, bounds)
	}
	pw := max(int(math.Round(nb.Width()*scale)), 1)
	ph := max(int(math.Round(nb.Height()*scale)), 1)
	return nb, pw, ph, nil
}

// allocSurface allocates the pixel destination for a rasterization,
// enforcing the allocator's size limits.
func allocSurface(pw, ph int) (*image.RGBA, error) {
	if pw > maxSurfaceSide || ph > maxSurfaceSide {
		return nil, fmt.Errorf("%w: %dx%d exceeds limit %d", ErrSurfaceAllocation, pw, ph, maxSurfaceSide)
	}
	return image.NewRGBA(image.Rect(0, 0, pw, ph)), nil
}

// RenderSvg rasterizes a vector fragment at the given scale (pixels
// per document unit). The fragment is wrapped in a root element sized
// to the normalized bounds and handed to the vector backend; the
// resulting Image is placed at the normalized bounds.
func (r *Rasterizer) RenderSvg(svg Svg, bounds geometry.Aabb, scale float64) (Image, error) {
	nb, pw, ph, err := normalizeTarget(bounds, scale)
	if err != nil {
		return Image{}, err
	}
	dst, err := allocSurface(pw, ph)
	if err != nil {
		return Image{}, err
	}
	if r.backend == nil {
		return Image{}, fmt.Errorf("%w: no vector backend registered", ErrExternalRender)
	}

	doc := WrapSvgRoot(svg.Data, &nb, &nb, false)
	// Registered backends are not required to wrap their failures;
	// tag them here so callers can always test the category.
	if err := r.backend.Render(doc, nb, dst); err != nil {
		return Image{}, fmt.Errorf("%w: backend %s: %v", ErrExternalRender, r.backend.Name(), err)
	}

	rnote.Logger().Debug("rasterized svg",
		"backend", r.backend.Name(), "width", pw, "height", ph, "scale", scale)
	return FromSurfaceCapture(dst.Pix, pw, ph, SurfaceFormatRGBA8Premultiplied, nb), nil
}

// RenderDrawFunc rasterizes an opaque draw procedure. The procedure
// receives a drawing surface whose coordinate system is document
// space: the surface transform scales by the pixel density and
// translates so the normalized bounds land on [0,0]x(pw,ph).
func (r *Rasterizer) RenderDrawFunc(drawFn func(*gg.Context) error, bounds geometry.Aabb, scale float64) (Image, error) {
	nb, pw, ph, err := normalizeTarget(bounds, scale)
	if err != nil {
		return Image{}, err
	}
	if pw > maxSurfaceSide || ph > maxSurfaceSide {
		return Image{}, fmt.Errorf("%w: %dx%d exceeds limit %d", ErrSurfaceAllocation, pw, ph, maxSurfaceSide)
	}

	pm := gg.NewPixmap(pw, ph)
	dc := gg.NewContext(pw, ph, gg.WithPixmap(pm))
	defer func() {
		_ = dc.Close()
	}()
	dc.Scale(scale, scale)
	dc.Translate(-nb.Mins.X, -nb.Mins.Y)

	if err := drawFn(dc); err != nil {
		return Image{}, fmt.Errorf("%w: draw procedure: %v", ErrExternalRender, err)
	}
	// The surface must be flushed before its pixels are read: GPU
	// accelerated contexts buffer draw commands.
	if err := dc.FlushGPU(); err != nil {
		return Image{}, fmt.Errorf("%w: surface flush: %v", ErrExternalRender, err)
	}

	return FromSurfaceCapture(pm.Data(), pw, ph, SurfaceFormatRGBA8Premultiplied, nb), nil
}

// DrawSvg paints a vector fragment onto an existing drawing surface
// at the given scale, at the pixel position of the fragment's own
// bounds. It rasterizes through the vector backend and blits the
// result in surface pixel coordinates; callers invoke it with the
// surface transform at identity.
func (r *Rasterizer) DrawSvg(dc *gg.Context, svg Svg, scale float64) error {
	img, err := r.RenderSvg(svg, svg.Bounds, scale)
	if err != nil {
		return err
	}
	buf := gg.ImageBufFromImage(img.rgba())
	pos := img.Rect.Bounds()
	dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             pos.Mins.X * scale,
		Y:             pos.Mins.Y * scale,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
	})
	return nil
}
