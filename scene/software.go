package scene

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/sumonst21/rnote/geometry"
)

// SoftwareNodeRenderer composites node trees on the CPU. It serves as
// the reference implementation of NodeRenderer for headless export and
// tests; the GPU display backend replaces it in the application.
type SoftwareNodeRenderer struct {
	scale float64
}

// NewSoftwareNodeRenderer creates a renderer producing scale pixels
// per document unit. A non-positive scale falls back to 1.
func NewSoftwareNodeRenderer(scale float64) *SoftwareNodeRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &SoftwareNodeRenderer{scale: scale}
}

// RenderTexture implements NodeRenderer. The node tree is composited
// in paint order into an RGBA texture covering the viewport, or the
// node's own bounds when no viewport is given. An empty region yields
// no texture and no error.
func (r *SoftwareNodeRenderer) RenderTexture(node Node, viewport *geometry.Aabb) (*MemoryTexture, error) {
	if node == nil {
		return nil, nil
	}
	region := node.Bounds()
	if viewport != nil {
		region = *viewport
	}
	region = region.EnsurePositive().Ceil()
	if !region.Valid() {
		return nil, nil
	}

	pw := max(int(math.Round(region.Width()*r.scale)), 1)
	ph := max(int(math.Round(region.Height()*r.scale)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, pw, ph))

	// Maps document space onto [0,0]x(pw,ph).
	base := geometry.Scaling(geometry.V(r.scale, r.scale)).
		Mul(geometry.Translation(region.Mins.Neg()))
	r.walk(dst, node, base)

	return NewMemoryTexture(pw, ph, gputypes.TextureFormatRGBA8Unorm, dst.Pix, dst.Stride)
}

func (r *SoftwareNodeRenderer) walk(dst *image.RGBA, n Node, cur geometry.Transform) {
	switch n := n.(type) {
	case TextureNode:
		r.drawTexture(dst, n, cur)
	case TransformNode:
		if n.Child() != nil {
			r.walk(dst, n.Child(), cur.Mul(n.Transform()))
		}
	case ContainerNode:
		for _, c := range n.Children() {
			if c != nil {
				r.walk(dst, c, cur)
			}
		}
	}
}

func (r *SoftwareNodeRenderer) drawTexture(dst *image.RGBA, n TextureNode, cur geometry.Transform) {
	tex := n.Texture()
	rect := n.Rect()
	if tex == nil || tex.Width() == 0 || tex.Height() == 0 {
		return
	}
	src := &image.RGBA{
		Pix:    tex.Data(),
		Stride: tex.Stride(),
		Rect:   image.Rect(0, 0, tex.Width(), tex.Height()),
	}
	// Texture pixel space -> node rect -> current document transform.
	m := cur.
		Mul(geometry.Translation(rect.Mins)).
		Mul(geometry.Scaling(geometry.V(
			rect.Width()/float64(tex.Width()),
			rect.Height()/float64(tex.Height()),
		)))
	draw.ApproxBiLinear.Transform(dst, m.Aff3(), src, src.Rect, draw.Over, nil)
}

// SoftwareRoot is a display root backed by a SoftwareNodeRenderer,
// for headless capture without a windowing system.
type SoftwareRoot struct {
	renderer *SoftwareNodeRenderer
}

// NewSoftwareRoot creates a root rendering at the given pixel scale.
func NewSoftwareRoot(scale float64) *SoftwareRoot {
	return &SoftwareRoot{renderer: NewSoftwareNodeRenderer(scale)}
}

// Renderer implements Root.
func (r *SoftwareRoot) Renderer() NodeRenderer { return r.renderer }
