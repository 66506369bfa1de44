package nodes

import (
	"context"
	"fmt"
)

// PadCalculatorNode resolves an input image against the dimension table and
// emits the margins needed to letterbox it into the chosen target.
type PadCalculatorNode struct{}

func (PadCalculatorNode) Name() string { return "NanoBananaPadCalculator" }

func (PadCalculatorNode) Inputs() []Slot {
	return []Slot{
		{Name: "image", Kind: KindImage, Required: true},
		{Name: "aspect_ratio", Kind: KindString, Default: Auto, Enum: append([]string{Auto}, aspectRatioLabels...)},
		{Name: "resolution", Kind: KindString, Default: Auto, Enum: append([]string{Auto}, resolutionTiers...)},
	}
}

func (PadCalculatorNode) Outputs() []Slot {
	return []Slot{
		{Name: "pad_left", Kind: KindInt},
		{Name: "pad_right", Kind: KindInt},
		{Name: "pad_top", Kind: KindInt},
		{Name: "pad_bottom", Kind: KindInt},
		{Name: "target_w", Kind: KindInt},
		{Name: "target_h", Kind: KindInt},
		{Name: "aspect_ratio", Kind: KindString},
		{Name: "resolution", Kind: KindString},
	}
}

func (n PadCalculatorNode) Call(ctx context.Context, in Values) (Values, error) {
	_ = ctx // pure arithmetic, nothing to cancel

	img := imageInput(in, "image")
	if img == nil {
		return nil, fmt.Errorf("%s: input %q is required", n.Name(), "image")
	}
	res, err := Resolve(ResolveRequest{
		Width:       img.Width,
		Height:      img.Height,
		AspectRatio: stringInput(in, "aspect_ratio"),
		Resolution:  stringInput(in, "resolution"),
	})
	if err != nil {
		return nil, err
	}

	return Values{
		"pad_left":     res.Left,
		"pad_right":    res.Right,
		"pad_top":      res.Top,
		"pad_bottom":   res.Bottom,
		"target_w":     res.TargetWidth,
		"target_h":     res.TargetHeight,
		"aspect_ratio": res.AspectRatio,
		"resolution":   res.Resolution,
	}, nil
}
