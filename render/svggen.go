package render

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	svgrenderer "github.com/tdewolff/canvas/renderers/svg"

	"github.com/sumonst21/rnote/geometry"
)

// SvgFromDrawFunc generates a vector fragment by running a draw
// procedure against an SVG renderer instead of a pixel surface. The
// procedure draws in document-space coordinates relative to the bounds
// origin; the resulting markup is wrapped in a group translated back
// to the bounds position, so the fragment lands at the right place
// when merged with others.
func SvgFromDrawFunc(draw func(*canvas.Context) error, bounds geometry.Aabb) (Svg, error) {
	b := bounds.EnsurePositive()
	if !b.Valid() {
		return Svg{}, fmt.Errorf("%w: svg generation bounds %+v", ErrInvalidBounds, bounds)
	}
	ext := b.Extents()

	var buf bytes.Buffer
	r := svgrenderer.New(&buf, ext.X, ext.Y, nil)
	ctx := canvas.NewContext(r)
	// Canvas defaults to a y-up coordinate system; document space is
	// y-down, top-left origin.
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetView(canvas.Identity.Translate(-b.Mins.X, -b.Mins.Y))

	if err := draw(ctx); err != nil {
		return Svg{}, fmt.Errorf("%w: %v", ErrExternalRender, err)
	}
	if err := r.Close(); err != nil {
		return Svg{}, fmt.Errorf("%w: closing svg renderer: %v", ErrExternalRender, err)
	}

	data := fmt.Sprintf(`<g transform="translate(%s %s)">%s</g>`,
		fc(b.Mins.X), fc(b.Mins.Y), removeXMLHeader(buf.String()))
	return Svg{Data: data, Bounds: b}, nil
}
