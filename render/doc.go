// Package render converts document-space vector content into pixel
// images and scene nodes.
//
// # Pipeline
//
// Drawable entities produce Svg fragments (or draw directly onto a
// drawing surface). A Rasterizer turns either into an Image: an owned
// RGBA pixel buffer with a document-space placement. Images convert to
// scene textures and nodes for GPU display, or encode to standard
// container formats for export.
//
//	Svg --(Rasterizer)--> Image --(ToNode)--> scene.Node
//	                        |
//	                        +--(Encode)--> PNG/JPEG/... bytes
//
// # Formats
//
// The canonical in-memory pixel layout is 8-bit RGBA with
// premultiplied alpha, stride 4*width, no padding. Surface captures in
// other channel orders (BGRA, as produced by wgpu-style surfaces) are
// normalized on entry.
//
// # Concurrency
//
// All calls are synchronous and blocking, with no shared mutable state
// between them; each rasterization owns its drawing surface. The
// process-wide font database (Fonts) is initialized once and read-only
// afterwards. Callers wanting parallel rasterization run independent
// calls from their own workers.
package render
