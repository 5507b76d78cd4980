package render

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
)

// MemoryFormat is the in-memory pixel layout of an Image. It is a
// closed enumeration: the whole pipeline normalizes to the canonical
// layout on entry, so downstream stages never branch on it.
type MemoryFormat int

const (
	// MemoryFormatR8G8B8A8Premultiplied is the canonical layout:
	// 8 bits per channel, byte order R,G,B,A, premultiplied alpha.
	MemoryFormatR8G8B8A8Premultiplied MemoryFormat = iota
)

// String returns the format name used in the persisted encoding.
func (f MemoryFormat) String() string {
	switch f {
	case MemoryFormatR8G8B8A8Premultiplied:
		return "R8g8b8a8Premultiplied"
	default:
		return fmt.Sprintf("MemoryFormat(%d)", int(f))
	}
}

// MarshalJSON encodes the format as its persisted name.
func (f MemoryFormat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON decodes a persisted format name.
func (f *MemoryFormat) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"R8g8b8a8Premultiplied"`:
		*f = MemoryFormatR8G8B8A8Premultiplied
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, b)
	}
}

// TextureFormat returns the GPU texture format matching the layout.
// The mapping is total for all MemoryFormat variants.
func (f MemoryFormat) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// ImageBufFormat returns the drawing-surface pixel format matching the
// layout. The mapping is total for all MemoryFormat variants.
func (f MemoryFormat) ImageBufFormat() gg.ImageFormat {
	return gg.FormatRGBAPremul
}

// MemoryFormatFromTexture derives a MemoryFormat from an arbitrary GPU
// texture format. This is the only fallible conversion direction: the
// closed MemoryFormat set cannot represent most texture layouts and
// the function fails with ErrUnsupportedFormat for them.
func MemoryFormatFromTexture(tf gputypes.TextureFormat) (MemoryFormat, error) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return MemoryFormatR8G8B8A8Premultiplied, nil
	default:
		return 0, fmt.Errorf("%w: texture format %v", ErrUnsupportedFormat, tf)
	}
}

// SurfaceFormat is the pixel layout of a captured drawing-surface
// buffer, before normalization to the canonical MemoryFormat.
type SurfaceFormat int

const (
	// SurfaceFormatRGBA8Premultiplied matches the canonical layout;
	// captures in it need no conversion. Software pixmaps use it.
	SurfaceFormatRGBA8Premultiplied SurfaceFormat = iota

	// SurfaceFormatBGRA8Premultiplied is the byte order B,G,R,A,
	// premultiplied, as produced by wgpu-style display surfaces.
	SurfaceFormatBGRA8Premultiplied
)

// String returns the surface format name.
func (f SurfaceFormat) String() string {
	switch f {
	case SurfaceFormatRGBA8Premultiplied:
		return "RGBA8Premultiplied"
	case SurfaceFormatBGRA8Premultiplied:
		return "BGRA8Premultiplied"
	default:
		return fmt.Sprintf("SurfaceFormat(%d)", int(f))
	}
}

// ImageBufFormat returns the drawing-surface pixel format tag for
// this layout.
func (f SurfaceFormat) ImageBufFormat() gg.ImageFormat {
	if f == SurfaceFormatBGRA8Premultiplied {
		return gg.FormatBGRAPremul
	}
	return gg.FormatRGBAPremul
}

// swapBGRA swaps the blue and red channels of every 4-byte pixel group
// in place, converting between BGRA and RGBA layouts. The transform is
// pure over the group contents and is its own inverse. A trailing
// partial group is left untouched.
func swapBGRA(buf []byte) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i], buf[i+2] = buf[i+2], buf[i]
	}
}
