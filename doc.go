// Package rnote provides the rendering core for an infinite-canvas
// drawing and note-taking application.
//
// # Overview
//
// The module bridges document-space vector content and GPU-displayable
// pixel data. Drawable entities produce SVG fragments or draw directly
// onto a CPU drawing surface; the render package turns both into owned
// pixel images; the scene package assembles those images into an
// immutable node tree for the display backend.
//
//	svg := render.Svg{Data: ..., Bounds: bounds}
//	r := render.NewRasterizer()
//	img, err := r.RenderSvg(svg, bounds, 2.0)
//	node, err := img.ToNode()
//
// # Packages
//
//   - geometry: document-space value types (Aabb, Transform, Rectangle)
//   - render: pixel formats, images, SVG fragments, rasterization
//   - scene: scene-node trees, textures, display capture
//
// # Coordinate Spaces
//
// Document space is resolution independent; pixel space is produced by
// the rasterizer at a caller-chosen scale (pixels per document unit).
// Pixel buffers are 8-bit RGBA, premultiplied alpha, row-major,
// top-to-bottom, stride 4*width.
package rnote

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
