package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrInvalidTexture is returned when texture dimensions, stride and
// data length do not agree.
var ErrInvalidTexture = errors.New("scene: invalid texture")

// MemoryTexture is a CPU-resident texture ready for GPU upload:
// 8-bit-per-channel pixel data, row-major, top-to-bottom.
//
// The display backend uploads the data as-is, so the buffer must stay
// unchanged for the lifetime of the texture.
type MemoryTexture struct {
	width  int
	height int
	format gputypes.TextureFormat
	stride int
	data   []byte
}

// NewMemoryTexture wraps pixel data as a texture. The data is not
// copied. Stride is in bytes and must cover a full row of 4-byte
// pixels; the data length must equal stride*height.
func NewMemoryTexture(width, height int, format gputypes.TextureFormat, data []byte, stride int) (*MemoryTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidTexture, width, height)
	}
	if stride < width*4 {
		return nil, fmt.Errorf("%w: stride %d below row size %d", ErrInvalidTexture, stride, width*4)
	}
	if len(data) != stride*height {
		return nil, fmt.Errorf("%w: data length %d, want %d", ErrInvalidTexture, len(data), stride*height)
	}
	return &MemoryTexture{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		data:   data,
	}, nil
}

// Width returns the texture width in pixels.
func (t *MemoryTexture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *MemoryTexture) Height() int { return t.height }

// Format returns the GPU texture format of the data.
func (t *MemoryTexture) Format() gputypes.TextureFormat { return t.format }

// Stride returns the number of bytes per row.
func (t *MemoryTexture) Stride() int { return t.stride }

// Data returns the raw pixel data.
func (t *MemoryTexture) Data() []byte { return t.data }
