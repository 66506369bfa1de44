package gemini

// Error is the wire-layer error; the root package maps it onto the public
// error kinds.
type Error struct {
	Code    string
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "gemini: " + e.Message
	}
	return "gemini: error"
}

func (e *Error) Unwrap() error { return e.Cause }

// GenerateRequest carries everything one generateContent call needs. The
// image is already encoded; ImageData nil means text-only generation.
type GenerateRequest struct {
	Model  string
	Prompt string
	APIKey string

	ImageData     []byte
	ImageMIMEType string

	AspectRatio string
	Resolution  string

	Headers map[string]string
}

// GenerateResponse holds the decoded inline image payload of the first
// candidate plus the raw response body.
type GenerateResponse struct {
	Data        []byte
	MediaType   string
	RawResponse []byte
}

// Request wire format. The API accepts snake_case part fields; the config
// block is camelCase.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inline_data,omitempty"`
}

type blob struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

// Response wire format. Responses come back camelCase.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string        `json:"text,omitempty"`
				InlineData *responseBlob `json:"inlineData,omitempty"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type responseBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
