package render

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/sumonst21/rnote/geometry"
)

// WrapSvgRoot wraps an SVG body fragment in a standalone <svg> root
// element. Bounds supplies the x/y/width/height attributes, viewbox
// the viewBox attribute; either may be nil to omit the attributes.
// External SVG parsers reject bare fragments, so wrapping is required
// before handing markup to a vector backend.
func WrapSvgRoot(data string, bounds, viewbox *geometry.Aabb, preserveAspectRatio bool) string {
	var b strings.Builder
	b.WriteString(`<svg version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`)
	if bounds != nil {
		ext := bounds.Extents()
		fmt.Fprintf(&b, ` x="%s" y="%s" width="%s" height="%s"`,
			fc(bounds.Mins.X), fc(bounds.Mins.Y), fc(ext.X), fc(ext.Y))
	}
	if viewbox != nil {
		ext := viewbox.Extents()
		fmt.Fprintf(&b, ` viewBox="%s %s %s %s"`,
			fc(viewbox.Mins.X), fc(viewbox.Mins.Y), fc(ext.X), fc(ext.Y))
	}
	if preserveAspectRatio {
		b.WriteString(` preserveAspectRatio="xMidYMid"`)
	} else {
		b.WriteString(` preserveAspectRatio="none"`)
	}
	b.WriteString(">\n")
	b.WriteString(data)
	b.WriteString("\n</svg>")
	return b.String()
}

// fc formats a document-space coordinate at full precision.
func fc(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var xmlHeaderRe = regexp.MustCompile(`(?s)^\s*<\?xml.*?\?>\s*`)

// removeXMLHeader strips a leading XML declaration from markup.
func removeXMLHeader(data string) string {
	return xmlHeaderRe.ReplaceAllString(data, "")
}

// floatRe matches numbers that carry a fractional part or an exponent.
// Plain integers are already canonical and stay untouched.
var floatRe = regexp.MustCompile(`-?(?:\d+\.\d+|\.\d+)(?:[eE][+-]?\d+)?|-?\d+[eE][+-]?\d+`)

// roundNumbers reformats every non-integer number in the value to a
// fixed decimal precision, dropping trailing zeros.
func roundNumbers(value string, precision int) string {
	return floatRe.ReplaceAllStringFunc(value, func(m string) string {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return m
		}
		s := strconv.FormatFloat(v, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	})
}

const idPrefixAlphabet = "abcdefghijklmnopqrstuvwxyz"

// randomIDPrefix generates a short prefix applied to element ids when
// canonicalizing a fragment, so ids stay unique after fragments from
// different sources are merged into one document.
func randomIDPrefix() string {
	var b [8]byte
	for i := range b {
		b[i] = idPrefixAlphabet[rand.Intn(len(idPrefixAlphabet))]
	}
	return string(b[:]) + "-"
}

var urlRefRe = regexp.MustCompile(`url\(#([^)]+)\)`)

// prefixIDRefs rewrites url(#id) references inside an attribute value.
func prefixIDRefs(value, prefix string) string {
	return urlRefRe.ReplaceAllString(value, "url(#"+prefix+"$1)")
}
