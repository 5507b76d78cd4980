package render

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for content-sniffing decode only.
	_ "golang.org/x/image/webp"
)

// EncodeFormat selects the container format for Image.Encode. Decoding
// never needs a format: the container is sniffed from the content.
type EncodeFormat int

const (
	// EncodePNG encodes to PNG (lossless, the export default).
	EncodePNG EncodeFormat = iota
	// EncodeJPEG encodes to JPEG at quality 90.
	EncodeJPEG
	// EncodeBMP encodes to uncompressed BMP.
	EncodeBMP
	// EncodeTIFF encodes to uncompressed TIFF.
	EncodeTIFF
	// EncodeGIF encodes to GIF (256-color quantized).
	EncodeGIF
)

// String returns the usual file extension of the format.
func (f EncodeFormat) String() string {
	switch f {
	case EncodePNG:
		return "png"
	case EncodeJPEG:
		return "jpeg"
	case EncodeBMP:
		return "bmp"
	case EncodeTIFF:
		return "tiff"
	case EncodeGIF:
		return "gif"
	default:
		return fmt.Sprintf("EncodeFormat(%d)", int(f))
	}
}

// jpegQuality is the fixed quality for JPEG export.
const jpegQuality = 90

func encodeTo(w io.Writer, img image.Image, format EncodeFormat) error {
	switch format {
	case EncodePNG:
		return png.Encode(w, img)
	case EncodeJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case EncodeBMP:
		return bmp.Encode(w, img)
	case EncodeTIFF:
		return tiff.Encode(w, img, nil)
	case EncodeGIF:
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: encode format %d", ErrUnsupportedFormat, int(format))
	}
}
