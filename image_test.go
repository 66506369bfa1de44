package nodes

import (
	"image"
	"image/color"
	"testing"
)

func TestImageBufferRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	buf := FromImage(src)
	if buf.Width != 3 || buf.Height != 2 || buf.Channels != 3 {
		t.Fatalf("shape = %dx%dx%d", buf.Width, buf.Height, buf.Channels)
	}
	if got := buf.At(0, 0, 0); got != 1 {
		t.Fatalf("red sample = %v, want 1", got)
	}
	if got := buf.At(1, 0, 1); got != 1 {
		t.Fatalf("green sample = %v, want 1", got)
	}
	if got := buf.At(2, 0, 0); got != 0 {
		t.Fatalf("blue pixel red sample = %v, want 0", got)
	}

	out := buf.ToImage()
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), src.Bounds())
	}
	if got := out.NRGBAAt(0, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("white pixel = %v", got)
	}
	if got := out.NRGBAAt(1, 1); got != (color.NRGBA{A: 255}) {
		t.Fatalf("black pixel = %v", got)
	}
}

func TestImageBufferAtSetBounds(t *testing.T) {
	buf := NewImageBuffer(2, 2)
	buf.Set(1, 1, 2, 0.5)
	if got := buf.At(1, 1, 2); got != 0.5 {
		t.Fatalf("sample = %v, want 0.5", got)
	}

	// Out-of-range access must not panic.
	buf.Set(-1, 0, 0, 1)
	buf.Set(0, 2, 0, 1)
	buf.Set(0, 0, 3, 1)
	if got := buf.At(5, 5, 0); got != 0 {
		t.Fatalf("out-of-range sample = %v, want 0", got)
	}
}

func TestEncodeDecodePNG(t *testing.T) {
	buf := NewImageBuffer(4, 3)
	for x := 0; x < 4; x++ {
		buf.Set(x, 1, 0, 1) // a red stripe
	}

	data, err := buf.EncodePNG()
	if err != nil {
		t.Fatal(err)
	}

	back, err := DecodeImageBuffer(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Width != 4 || back.Height != 3 {
		t.Fatalf("decoded shape = %dx%d", back.Width, back.Height)
	}
	if got := back.At(2, 1, 0); got != 1 {
		t.Fatalf("stripe sample = %v, want 1", got)
	}
	if got := back.At(2, 0, 0); got != 0 {
		t.Fatalf("background sample = %v, want 0", got)
	}
}

func TestEncodePNGEmptyBuffer(t *testing.T) {
	if _, err := (&ImageBuffer{}).EncodePNG(); err == nil {
		t.Fatal("expected error for empty buffer")
	}
	bad := &ImageBuffer{Width: 2, Height: 2, Channels: 3, Pix: make([]float32, 5)}
	if _, err := bad.EncodePNG(); err == nil {
		t.Fatal("expected error for short sample slice")
	}
}

func TestDecodeImageBufferGarbage(t *testing.T) {
	if _, err := DecodeImageBuffer([]byte("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestQuantizeClamps(t *testing.T) {
	if got := quantize(-0.5); got != 0 {
		t.Fatalf("quantize(-0.5) = %d", got)
	}
	if got := quantize(1.5); got != 255 {
		t.Fatalf("quantize(1.5) = %d", got)
	}
	if got := quantize(0.5); got != 128 {
		t.Fatalf("quantize(0.5) = %d", got)
	}
}
