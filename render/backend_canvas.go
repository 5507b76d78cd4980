package render

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	xdraw "golang.org/x/image/draw"

	"github.com/sumonst21/rnote/geometry"
)

func init() {
	RegisterBackend(canvasBackend{})
}

// canvasBackend rasterizes SVG documents through tdewolff/canvas. It
// is the default backend: unlike the rasterx fallback it renders text
// elements.
type canvasBackend struct{}

func (canvasBackend) Name() string { return BackendCanvas }

func (canvasBackend) Render(doc string, _ geometry.Aabb, dst *image.RGBA) error {
	c, err := canvas.ParseSVG(strings.NewReader(doc))
	if err != nil {
		return fmt.Errorf("%w: canvas parse: %v", ErrExternalRender, err)
	}
	if c.W <= 0 || c.H <= 0 {
		return fmt.Errorf("%w: canvas parse: document has no size", ErrExternalRender)
	}

	w := dst.Bounds().Dx()
	resolution := canvas.Resolution(float64(w) / c.W)
	img := rasterizer.Draw(c, resolution, canvas.DefaultColorSpace)

	if img.Bounds() == dst.Bounds() {
		draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Over)
	} else {
		// Rounding can leave the rasterized size off by a pixel;
		// rescale onto the exact destination.
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	}
	return nil
}
