package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sumonst21/rnote/geometry"
)

// SvgMimeType is the media type of SVG content.
const SvgMimeType = "image/svg+xml"

// Px unit (96 DPI) to point unit (72 DPI) conversion factor.
const PxToPointFactor = 72.0 / 96.0

// Point unit (72 DPI) to px unit (96 DPI) conversion factor.
const PointToPxFactor = 96.0 / 72.0

// ViewportExtentsMarginFactor is the factor by which callers extend
// the viewport when regenerating rendering for a new zoom or a moved
// view. 1.0 would extend the viewport by its own extents on all
// sides. Larger values consume more memory, smaller values cause more
// stuttering while zooming and panning.
const ViewportExtentsMarginFactor = 0.4

// Svg is an owned vector-markup fragment with document-space bounds.
//
// Data is a body fragment, not a standalone document: it must be
// wrapped in a root element (WrapRoot or WrapSvgRoot) before an
// external parser consumes it.
type Svg struct {
	// Data is the SVG markup.
	Data string
	// Bounds of the fragment in document space.
	Bounds geometry.Aabb
}

// Merge appends the other fragments to this one in argument order and
// unions the bounds. Markup is newline-concatenated, so the argument
// order is the paint order: later fragments paint over earlier ones.
// Merging zero fragments is a no-op.
func (s *Svg) Merge(others ...Svg) {
	for _, o := range others {
		s.Data += "\n" + o.Data
		s.Bounds = s.Bounds.Union(o.Bounds)
	}
}

// WrapRoot wraps the fragment in a standalone root element with the
// given bounds and viewbox attributes. When bounds is non-nil the
// fragment bounds are updated to it.
func (s *Svg) WrapRoot(bounds, viewbox *geometry.Aabb, preserveAspectRatio bool) {
	s.Data = WrapSvgRoot(s.Data, bounds, viewbox, preserveAspectRatio)
	if bounds != nil {
		s.Bounds = *bounds
	}
}

// Transform attributes keep one extra digit over coordinates: small
// matrix coefficients compound over deep group nesting.
const (
	coordinatesPrecision = 3
	transformsPrecision  = 4
)

// Simplify canonicalizes the fragment by round-tripping it through an
// XML parser and re-serializing with fixed numeric precision and a
// random document-unique id prefix.
//
// As a side effect the bounds are re-based to origin-relative
// coordinates ([0,0]x extents): the embedded coordinates no longer
// match the original document space, so callers must track the
// translation offset separately.
func (s *Svg) Simplify() error {
	simplified := geometry.AabbFromSize(s.Bounds.Width(), s.Bounds.Height())
	wrapped := WrapSvgRoot(removeXMLHeader(s.Data), &simplified, &s.Bounds, false)

	out, err := canonicalizeMarkup(wrapped, randomIDPrefix())
	if err != nil {
		return fmt.Errorf("render: simplify: %w", err)
	}

	s.Data = removeXMLHeader(out)
	s.Bounds = simplified
	return nil
}

// transformAttrs lists the attributes holding affine matrices.
var transformAttrs = map[string]bool{
	"transform":         true,
	"gradientTransform": true,
	"patternTransform":  true,
}

// canonicalizeMarkup parses markup and re-serializes it on a single
// line: numbers at fixed precision, ids prefixed, XML declaration and
// doctype dropped.
func canonicalizeMarkup(markup, idPrefix string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false

	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			writeStartElement(&b, t, idPrefix)
		case xml.EndElement:
			b.WriteString("</")
			b.WriteString(t.Name.Local)
			b.WriteString(">")
		case xml.CharData:
			if err := xml.EscapeText(&b, t); err != nil {
				return "", err
			}
		}
		// Comments, directives and processing instructions are
		// dropped: they carry no visual content.
	}
	return b.String(), nil
}

func writeStartElement(b *strings.Builder, t xml.StartElement, idPrefix string) {
	b.WriteString("<")
	b.WriteString(t.Name.Local)
	for _, attr := range t.Attr {
		name := attrName(attr.Name)
		if name == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		var buf strings.Builder
		_ = xml.EscapeText(&buf, []byte(canonicalAttrValue(name, attr.Value, idPrefix)))
		b.WriteString(buf.String())
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

// attrName reconstructs the serialized attribute name from the parsed
// one, restoring the xmlns and xlink prefixes the decoder expands.
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	case "http://www.w3.org/1999/xlink":
		return "xlink:" + n.Local
	case "http://www.w3.org/2000/xmlns/":
		if n.Local == "xmlns" {
			return "xmlns"
		}
		return "xmlns:" + n.Local
	default:
		return n.Local
	}
}

func canonicalAttrValue(name, value, idPrefix string) string {
	switch {
	case name == "id":
		return idPrefix + value
	case (name == "href" || name == "xlink:href") && strings.HasPrefix(value, "#"):
		return "#" + idPrefix + value[1:]
	case transformAttrs[name]:
		return roundNumbers(value, transformsPrecision)
	case strings.HasPrefix(name, "xmlns"):
		return value
	default:
		return roundNumbers(prefixIDRefs(value, idPrefix), coordinatesPrecision)
	}
}
