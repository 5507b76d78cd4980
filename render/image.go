package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/sumonst21/rnote/geometry"
	"github.com/sumonst21/rnote/scene"
)

// Image is an owned bitmap with a document-space placement.
//
// Data holds PixelWidth*PixelHeight pixels in the canonical memory
// format, stride 4*PixelWidth, no padding. Rect places the bitmap on
// the canvas and may carry rotation and non-uniform scale, not just a
// position.
//
// The JSON encoding matches the persisted document format: pixel data
// is embedded base64-encoded.
type Image struct {
	// Data is the raw pixel buffer.
	Data []byte `json:"data"`
	// Rect is the target placement in document space.
	Rect geometry.Rectangle `json:"rectangle"`
	// PixelWidth is the width of the pixel buffer.
	PixelWidth int `json:"pixel_width"`
	// PixelHeight is the height of the pixel buffer.
	PixelHeight int `json:"pixel_height"`
	// MemoryFormat tags the pixel layout of Data.
	MemoryFormat MemoryFormat `json:"memory_format"`
}

// Validate checks the Image invariants: positive pixel dimensions, a
// buffer of exactly 4*width*height bytes and a finite, non-degenerate
// placement. It is called before every format conversion or encode.
func (i *Image) Validate() error {
	if i.PixelWidth <= 0 || i.PixelHeight <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, i.PixelWidth, i.PixelHeight)
	}
	if want := 4 * i.PixelWidth * i.PixelHeight; len(i.Data) != want {
		return fmt.Errorf("%w: buffer length %d, want %d", ErrInvalidImage, len(i.Data), want)
	}
	if !i.Rect.Valid() {
		return fmt.Errorf("%w: degenerate placement rect", ErrInvalidImage)
	}
	return nil
}

// DecodeImage decodes encoded bytes into an Image. The container
// format (PNG, JPEG, GIF, BMP, TIFF, WebP) is sniffed from the
// content. The result is placed at [0,0]x[width,height] in document
// space, one document unit per pixel.
func DecodeImage(encoded []byte) (Image, error) {
	src, _, err := image.Decode(bytes.NewReader(encoded))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	return Image{
		Data:         rgba.Pix,
		Rect:         geometry.RectFromAabb(geometry.AabbFromSize(float64(w), float64(h))),
		PixelWidth:   w,
		PixelHeight:  h,
		MemoryFormat: MemoryFormatR8G8B8A8Premultiplied,
	}, nil
}

// FromSurfaceCapture wraps a captured drawing-surface buffer as an
// Image placed at bounds. The buffer is copied and normalized from the
// surface layout to the canonical memory format (BGRA captures get the
// channel swap).
func FromSurfaceCapture(data []byte, width, height int, format SurfaceFormat, bounds geometry.Aabb) Image {
	owned := make([]byte, len(data))
	copy(owned, data)
	if format == SurfaceFormatBGRA8Premultiplied {
		swapBGRA(owned)
	}
	return Image{
		Data:         owned,
		Rect:         geometry.RectFromAabb(bounds),
		PixelWidth:   width,
		PixelHeight:  height,
		MemoryFormat: MemoryFormatR8G8B8A8Premultiplied,
	}
}

// rgba wraps the pixel buffer as an image.RGBA sharing the data.
func (i *Image) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    i.Data,
		Stride: 4 * i.PixelWidth,
		Rect:   image.Rect(0, 0, i.PixelWidth, i.PixelHeight),
	}
}

// Encode validates the image and encodes it to the given container
// format. For a lossless format the encode/decode round trip preserves
// dimensions and pixel data byte-exactly.
func (i *Image) Encode(format EncodeFormat) ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encodeTo(&buf, i.rgba(), format); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// ToTexture validates the image and wraps its buffer as a texture
// ready for GPU upload: stride fixed at 4*width, no padding.
func (i *Image) ToTexture() (*scene.MemoryTexture, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	tex, err := scene.NewMemoryTexture(
		i.PixelWidth,
		i.PixelHeight,
		i.MemoryFormat.TextureFormat(),
		i.Data,
		4*i.PixelWidth,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return tex, nil
}

// ToNode converts the image into a renderable scene node: a texture
// node covering the placement's local bounds, wrapped in a transform
// node carrying the placement transform. The two-node composition is
// required because the placement may rotate and scale, which a texture
// node alone cannot express.
func (i *Image) ToNode() (scene.Node, error) {
	tex, err := i.ToTexture()
	if err != nil {
		return nil, err
	}
	texNode := scene.NewTextureNode(tex, i.Rect.LocalBounds())
	return scene.NewTransformNode(texNode, i.Rect.Transform), nil
}

// ImagesToNodes converts images into scene nodes in order,
// short-circuiting on the first failure and discarding partial output.
func ImagesToNodes(images []Image) ([]scene.Node, error) {
	nodes := make([]scene.Node, 0, len(images))
	for idx := range images {
		node, err := images[idx].ToNode()
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", idx, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Draw paints the image onto a drawing surface, applying its placement
// transform. The pixel data is expected in the canonical memory
// format.
//
// Axis-aligned placements draw directly. The surface's image blit maps
// only the destination corners through the context matrix, which
// cannot express rotation or shear, so those placements are resampled
// into an axis-aligned intermediate covering the transformed hull
// first.
func (i *Image) Draw(dc *gg.Context) error {
	if err := i.Validate(); err != nil {
		return err
	}
	tr := i.Rect.Transform
	if tr.B == 0 && tr.D == 0 && tr.A > 0 && tr.E > 0 {
		local := i.Rect.LocalBounds()
		dc.Push()
		defer dc.Pop()
		dc.Transform(gg.Matrix{
			A: tr.A, B: tr.B, C: tr.C,
			D: tr.D, E: tr.E, F: tr.F,
		})
		dc.DrawImageEx(gg.ImageBufFromImage(i.rgba()), gg.DrawImageOptions{
			X:             local.Mins.X,
			Y:             local.Mins.Y,
			DstWidth:      local.Width(),
			DstHeight:     local.Height(),
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
		})
		return nil
	}
	return i.drawTransformed(dc)
}

// drawTransformed paints a rotated or sheared placement by resampling
// the pixels into an intermediate covering the axis-aligned hull, then
// blitting the intermediate at the hull position.
func (i *Image) drawTransformed(dc *gg.Context) error {
	hull := i.Rect.Bounds()
	if !hull.Valid() {
		return fmt.Errorf("%w: degenerate placement rect", ErrInvalidImage)
	}
	local := i.Rect.LocalBounds()

	// Carry the source pixel density into the intermediate so the
	// resample does not lose resolution.
	density := math.Max(
		float64(i.PixelWidth)/local.Width(),
		float64(i.PixelHeight)/local.Height(),
	)
	pw := max(int(math.Ceil(hull.Width()*density)), 1)
	ph := max(int(math.Ceil(hull.Height()*density)), 1)
	tmp := image.NewRGBA(image.Rect(0, 0, pw, ph))

	// Texture pixel space -> local box -> placement -> hull pixel
	// space.
	m := geometry.Scaling(geometry.V(float64(pw)/hull.Width(), float64(ph)/hull.Height())).
		Mul(geometry.Translation(hull.Mins.Neg())).
		Mul(i.Rect.Transform).
		Mul(geometry.Translation(local.Mins)).
		Mul(geometry.Scaling(geometry.V(
			local.Width()/float64(i.PixelWidth),
			local.Height()/float64(i.PixelHeight),
		)))
	src := i.rgba()
	xdraw.ApproxBiLinear.Transform(tmp, m.Aff3(), src, src.Rect, xdraw.Over, nil)

	dc.DrawImageEx(gg.ImageBufFromImage(tmp), gg.DrawImageOptions{
		X:             hull.Mins.X,
		Y:             hull.Mins.Y,
		DstWidth:      hull.Width(),
		DstHeight:     hull.Height(),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
	})
	return nil
}

// Translate moves the image placement by the offset.
func (i *Image) Translate(offset geometry.Vec2) {
	i.Rect.Translate(offset)
}

// Rotate rotates the image placement by angle (radians) around center.
func (i *Image) Rotate(angle float64, center geometry.Vec2) {
	i.Rect.Rotate(angle, center)
}

// Scale scales the image placement relative to the document origin.
func (i *Image) Scale(s geometry.Vec2) {
	i.Rect.Scale(s)
}
