package nodes

import (
	"context"
	"fmt"
	"time"

	"github.com/nanopad-dev/nodes/gemini"
	internalgemini "github.com/nanopad-dev/nodes/internal/gemini"
)

// GenerateRequest describes one image generation call. Image is optional;
// when nil the prompt alone drives generation. AspectRatio and Resolution are
// hints forwarded to the API; empty or Auto leaves the choice to the service.
type GenerateRequest struct {
	Model  string
	Prompt string
	APIKey string

	Image *ImageBuffer

	AspectRatio string
	Resolution  string

	Headers map[string]string
	Timeout time.Duration
}

type GenerateResponse struct {
	Image     *ImageBuffer
	MediaType string

	RawResponse []byte
}

// Generate issues a single synchronous call to the generation API and decodes
// the returned image. There is no retry: the call either completes or fails
// the invocation.
func Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.APIKey == "" {
		return nil, &AuthenticationError{Message: "api key is required"}
	}
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	model := req.Model
	if model == "" {
		model = gemini.ModelGemini3ProImage
	}

	cfg := gemini.Default().Config()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = cfg.Timeout
	}
	ctx, cancel := applyTimeout(ctx, timeout)
	defer cancel()

	wire := internalgemini.GenerateRequest{
		Model:       model,
		Prompt:      req.Prompt,
		APIKey:      req.APIKey,
		AspectRatio: hintValue(req.AspectRatio),
		Resolution:  hintValue(req.Resolution),
		Headers:     req.Headers,
	}
	if req.Image != nil {
		data, err := req.Image.EncodePNG()
		if err != nil {
			return nil, fmt.Errorf("encode input image: %w", err)
		}
		wire.ImageData = data
		wire.ImageMIMEType = "image/png"
	}

	out, err := internalgemini.GenerateImage(ctx, cfg, wire)
	if err != nil {
		return nil, mapWireError(err)
	}

	img, err := DecodeImageBuffer(out.Data)
	if err != nil {
		return nil, &GenerationError{
			Code:    "decode_error",
			Message: "undecodable image payload: " + err.Error(),
			Cause:   err,
		}
	}

	return &GenerateResponse{
		Image:       img,
		MediaType:   out.MediaType,
		RawResponse: out.RawResponse,
	}, nil
}

// hintValue normalizes Auto to empty so the request omits the hint entirely.
func hintValue(s string) string {
	if s == Auto {
		return ""
	}
	return s
}
