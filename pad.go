package nodes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Apply renders the letterbox described by r: a fill-colored canvas of the
// target size with buf pasted at (Left, Top). The input buffer is not
// modified. A nil fill pads with black.
func (r *PadResult) Apply(buf *ImageBuffer, fill color.Color) (*ImageBuffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("image is required")
	}
	if buf.Width+r.Left+r.Right != r.TargetWidth || buf.Height+r.Top+r.Bottom != r.TargetHeight {
		return nil, fmt.Errorf("pad result for %dx%d does not match image %dx%d",
			r.TargetWidth-r.Left-r.Right, r.TargetHeight-r.Top-r.Bottom, buf.Width, buf.Height)
	}
	if fill == nil {
		fill = color.Black
	}

	dst := imaging.New(r.TargetWidth, r.TargetHeight, fill)
	dst = imaging.Paste(dst, buf.ToImage(), image.Pt(r.Left, r.Top))
	return FromImage(dst), nil
}
