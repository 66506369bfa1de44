package gemini

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Image generation models served by the generateContent endpoint.
const (
	ModelGemini3ProImage  = "gemini-3-pro-image-preview"
	ModelGemini3NanoImage = "gemini-3-nano-image-preview"
)

// Models returns the supported model identifiers, default first.
func Models() []string {
	return []string{ModelGemini3ProImage, ModelGemini3NanoImage}
}

// Config holds endpoint wiring for generation calls. The API key is not part
// of the config: it is a per-invocation node input and travels with each
// request.
type Config struct {
	BaseURL   string
	APIPrefix string

	Headers    map[string]string
	HTTPClient *http.Client

	// Timeout bounds a single generation call when the request does not set
	// its own.
	Timeout time.Duration
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: normalizeConfig(cfg)}
}

var defaultClient atomic.Pointer[Client]

func init() {
	defaultClient.Store(NewClient(Config{}))
}

// Configure replaces the process-wide default client.
func Configure(cfg Config) {
	defaultClient.Store(NewClient(cfg))
}

// Default returns the process-wide default client.
func Default() *Client {
	return defaultClient.Load()
}

func (c *Client) Config() Config { return c.cfg }

func normalizeConfig(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/v1beta"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	return cfg
}
