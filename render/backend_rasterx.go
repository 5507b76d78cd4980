package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/sumonst21/rnote/geometry"
)

func init() {
	RegisterBackend(rasterxBackend{})
}

// rasterxBackend rasterizes SVG documents with oksvg parsing and
// rasterx scanline filling. It has no text support; documents with
// text elements should go through the canvas backend instead.
type rasterxBackend struct{}

func (rasterxBackend) Name() string { return BackendRasterx }

func (rasterxBackend) Render(doc string, _ geometry.Aabb, dst *image.RGBA) error {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return fmt.Errorf("%w: oksvg parse: %v", ErrExternalRender, err)
	}

	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	// The document viewbox is stretched onto the full destination.
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return nil
}
