package render

import "errors"

// Error taxonomy of the render pipeline. Every fallible operation
// returns the first failure immediately and performs no partial
// mutation; callers test categories with errors.Is.
var (
	// ErrInvalidImage reports an Image invariant violation: zero
	// dimensions, a buffer length that does not match 4*width*height,
	// or a non-finite/degenerate placement.
	ErrInvalidImage = errors.New("render: invalid image")

	// ErrUnsupportedFormat reports a pixel-format conversion with no
	// defined mapping.
	ErrUnsupportedFormat = errors.New("render: unsupported pixel format")

	// ErrDecode reports a codec-level decode failure (corrupt or
	// unrecognized container).
	ErrDecode = errors.New("render: decode failed")

	// ErrEncode reports a codec-level encode failure.
	ErrEncode = errors.New("render: encode failed")

	// ErrInvalidBounds reports a degenerate or non-finite
	// rasterization target.
	ErrInvalidBounds = errors.New("render: invalid bounds")

	// ErrSurfaceAllocation reports that the drawing-surface allocator
	// rejected the requested pixel dimensions.
	ErrSurfaceAllocation = errors.New("render: surface allocation failed")

	// ErrExternalRender reports a failure inside the vector
	// rasterization or display backend. The wrapped message is
	// backend specific and opaque to this package.
	ErrExternalRender = errors.New("render: backend render failed")
)
