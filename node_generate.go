package nodes

import (
	"context"

	"github.com/nanopad-dev/nodes/gemini"
)

// GenerateNode calls the generation API with a prompt and an optional input
// image and emits the generated image.
type GenerateNode struct{}

func (GenerateNode) Name() string { return "GeminiImageGenerate" }

func (GenerateNode) Inputs() []Slot {
	return []Slot{
		{Name: "image", Kind: KindImage},
		{Name: "prompt", Kind: KindString, Default: "Transform this image"},
		{Name: "api_key", Kind: KindString, Required: true},
		{Name: "model", Kind: KindString, Default: gemini.ModelGemini3ProImage, Enum: gemini.Models()},
		{Name: "aspect_ratio", Kind: KindString, Default: "1:1", Enum: append([]string{Auto}, aspectRatioLabels...)},
		{Name: "resolution", Kind: KindString, Default: "1K", Enum: append([]string{Auto}, resolutionTiers...)},
	}
}

func (GenerateNode) Outputs() []Slot {
	return []Slot{
		{Name: "image", Kind: KindImage},
	}
}

func (n GenerateNode) Call(ctx context.Context, in Values) (Values, error) {
	resp, err := Generate(ctx, GenerateRequest{
		Model:       stringInput(in, "model"),
		Prompt:      stringInput(in, "prompt"),
		APIKey:      stringInput(in, "api_key"),
		Image:       imageInput(in, "image"),
		AspectRatio: stringInput(in, "aspect_ratio"),
		Resolution:  stringInput(in, "resolution"),
	})
	if err != nil {
		return nil, err
	}
	return Values{"image": resp.Image}, nil
}
