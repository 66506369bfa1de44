package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	publicgemini "github.com/nanopad-dev/nodes/gemini"
	"github.com/nanopad-dev/nodes/internal/httpx"
)

// GenerateImage issues one synchronous generateContent call and returns the
// first inline image of the first candidate.
func GenerateImage(ctx context.Context, cfg publicgemini.Config, req GenerateRequest) (GenerateResponse, error) {
	if req.Model == "" {
		return GenerateResponse{}, &Error{Code: "invalid_request", Message: "model is required"}
	}
	if req.Prompt == "" {
		return GenerateResponse{}, &Error{Code: "invalid_request", Message: "prompt is required"}
	}

	payload := buildRequest(req)
	body, err := json.Marshal(payload)
	if err != nil {
		return GenerateResponse{}, &Error{Code: "marshal_error", Message: err.Error(), Cause: err}
	}

	u, err := endpointURL(cfg, req.Model)
	if err != nil {
		return GenerateResponse{}, &Error{Code: "url_error", Message: err.Error(), Cause: err}
	}

	h := make(http.Header)
	h.Set("x-goog-api-key", req.APIKey)
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}
	for k, v := range req.Headers {
		h.Set(k, v)
	}

	resp, err := httpx.DoJSON(ctx, cfg.HTTPClient, http.MethodPost, u, body, h)
	if err != nil {
		return GenerateResponse{}, &Error{Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
			return GenerateResponse{}, &Error{
				Code:    stringifyStatus(er.Error.Status),
				Status:  resp.StatusCode,
				Message: er.Error.Message,
			}
		}
		return GenerateResponse{}, &Error{
			Code:    "http_error",
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(b)),
		}
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResponse{}, &Error{Code: "read_error", Message: err.Error(), Cause: err}
	}
	var out generateContentResponse
	if err := json.Unmarshal(rawBody, &out); err != nil {
		return GenerateResponse{}, &Error{Code: "decode_error", Message: err.Error(), Cause: err}
	}

	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return GenerateResponse{}, &Error{Code: "decode_error", Message: "invalid base64 image data", Cause: err}
			}
			mediaType := p.InlineData.MIMEType
			if mediaType == "" {
				mediaType = "image/png"
			}
			return GenerateResponse{Data: data, MediaType: mediaType, RawResponse: rawBody}, nil
		}
	}

	return GenerateResponse{}, &Error{Code: "no_image", Message: "response contains no image data"}
}

func buildRequest(req GenerateRequest) generateContentRequest {
	parts := []part{{Text: req.Prompt}}
	if len(req.ImageData) > 0 {
		mime := req.ImageMIMEType
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, part{InlineData: &blob{
			MIMEType: mime,
			Data:     base64.StdEncoding.EncodeToString(req.ImageData),
		}})
	}

	gc := &generationConfig{ResponseModalities: []string{"Image"}}
	if req.AspectRatio != "" || req.Resolution != "" {
		gc.ImageConfig = &imageConfig{
			AspectRatio: req.AspectRatio,
			ImageSize:   req.Resolution,
		}
	}

	return generateContentRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: gc,
	}
}

func endpointURL(cfg publicgemini.Config, model string) (string, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	u, err := url.Parse(base + prefix + "/models/" + url.PathEscape(model) + ":generateContent")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func classifyNetworkErr(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "network_error"
	}
}

func stringifyStatus(status string) string {
	if status == "" {
		return "http_error"
	}
	return strings.ToLower(status)
}
