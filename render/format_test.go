package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestSwapBGRASelfInverse(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"one pixel", []byte{1, 2, 3, 4}},
		{"two pixels", []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"trailing partial group", []byte{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]byte(nil), tt.buf...)
			swapBGRA(tt.buf)
			swapBGRA(tt.buf)
			if !bytes.Equal(tt.buf, orig) {
				t.Errorf("double swap changed buffer: got %v, want %v", tt.buf, orig)
			}
		})
	}
}

func TestSwapBGRA(t *testing.T) {
	buf := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	swapBGRA(buf)
	want := []byte{30, 20, 10, 40, 70, 60, 50, 80}
	if !bytes.Equal(buf, want) {
		t.Fatalf("swapBGRA = %v, want %v", buf, want)
	}
}

func TestMemoryFormatFromTexture(t *testing.T) {
	f, err := MemoryFormatFromTexture(gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != MemoryFormatR8G8B8A8Premultiplied {
		t.Errorf("got format %v", f)
	}

	_, err = MemoryFormatFromTexture(gputypes.TextureFormatBGRA8Unorm)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("BGRA texture: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestMemoryFormatJSON(t *testing.T) {
	b, err := json.Marshal(MemoryFormatR8G8B8A8Premultiplied)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"R8g8b8a8Premultiplied"` {
		t.Errorf("marshal = %s", b)
	}

	var f MemoryFormat
	if err := json.Unmarshal(b, &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f != MemoryFormatR8G8B8A8Premultiplied {
		t.Errorf("round trip = %v", f)
	}

	if err := json.Unmarshal([]byte(`"B8g8r8a8Premultiplied"`), &f); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown name: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestFromSurfaceCaptureBGRA(t *testing.T) {
	// One blue-ish BGRA pixel: B=200 G=100 R=50 A=255.
	src := []byte{200, 100, 50, 255}
	img := FromSurfaceCapture(src, 1, 1, SurfaceFormatBGRA8Premultiplied, aabbFromSize(1, 1))

	want := []byte{50, 100, 200, 255}
	if !bytes.Equal(img.Data, want) {
		t.Errorf("capture data = %v, want %v", img.Data, want)
	}
	// The source buffer must not be mutated.
	if !bytes.Equal(src, []byte{200, 100, 50, 255}) {
		t.Errorf("source buffer mutated: %v", src)
	}
}
