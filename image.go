package nodes

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Generation responses may arrive as PNG, JPEG, or WebP.
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// imageChannels is the sample count per pixel. Buffers are always RGB; alpha
// is dropped on conversion, matching what the generation API accepts.
const imageChannels = 3

// ImageBuffer is the host's image representation: height x width x channels
// float32 samples in [0, 1], row-major, with an implicit batch dimension of
// one. The resolver only reads its shape; conversions always allocate.
type ImageBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []float32
}

// NewImageBuffer allocates a zeroed (black) RGB buffer.
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		Width:    width,
		Height:   height,
		Channels: imageChannels,
		Pix:      make([]float32, width*height*imageChannels),
	}
}

// At returns the sample at (x, y) for channel c. Out-of-range coordinates
// return 0.
func (b *ImageBuffer) At(x, y, c int) float32 {
	if b == nil || x < 0 || y < 0 || c < 0 || x >= b.Width || y >= b.Height || c >= b.Channels {
		return 0
	}
	return b.Pix[(y*b.Width+x)*b.Channels+c]
}

// Set writes the sample at (x, y) for channel c. Out-of-range coordinates are
// ignored.
func (b *ImageBuffer) Set(x, y, c int, v float32) {
	if b == nil || x < 0 || y < 0 || c < 0 || x >= b.Width || y >= b.Height || c >= b.Channels {
		return
	}
	b.Pix[(y*b.Width+x)*b.Channels+c] = v
}

// FromImage converts a decoded image into a normalized RGB buffer.
func FromImage(img image.Image) *ImageBuffer {
	bounds := img.Bounds()
	buf := NewImageBuffer(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.Pix[i] = float32(r) / 0xffff
			buf.Pix[i+1] = float32(g) / 0xffff
			buf.Pix[i+2] = float32(b) / 0xffff
			i += imageChannels
		}
	}
	return buf
}

// ToImage converts the buffer back into an 8-bit image. Samples are clamped
// to [0, 1] before quantization.
func (b *ImageBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	i := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			o := img.PixOffset(x, y)
			img.Pix[o] = quantize(b.Pix[i])
			img.Pix[o+1] = quantize(b.Pix[i+1])
			img.Pix[o+2] = quantize(b.Pix[i+2])
			img.Pix[o+3] = 0xff
			i += b.Channels
		}
	}
	return img
}

// EncodePNG encodes the buffer as a PNG, the wire format the generation API
// expects for inline image data.
func (b *ImageBuffer) EncodePNG() ([]byte, error) {
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return nil, fmt.Errorf("image buffer is empty")
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return nil, fmt.Errorf("image buffer has %d samples, want %d", len(b.Pix), want)
	}
	var out bytes.Buffer
	if err := png.Encode(&out, b.ToImage()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return out.Bytes(), nil
}

// DecodeImageBuffer decodes PNG, JPEG, or WebP bytes into a buffer.
func DecodeImageBuffer(data []byte) (*ImageBuffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
