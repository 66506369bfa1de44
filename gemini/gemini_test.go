package gemini

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeConfigDefaults(t *testing.T) {
	cfg := NewClient(Config{}).Config()
	if cfg.BaseURL != "https://generativelanguage.googleapis.com" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIPrefix != "/v1beta" {
		t.Fatalf("APIPrefix = %q", cfg.APIPrefix)
	}
	if cfg.HTTPClient == nil {
		t.Fatal("HTTPClient is nil")
	}
	if cfg.Timeout != 120*time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
}

func TestConfigureOverrides(t *testing.T) {
	custom := &http.Client{}
	Configure(Config{BaseURL: "http://127.0.0.1:1", HTTPClient: custom, Timeout: time.Second})
	defer Configure(Config{})

	cfg := Default().Config()
	if cfg.BaseURL != "http://127.0.0.1:1" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HTTPClient != custom {
		t.Fatal("HTTPClient not kept")
	}
	if cfg.Timeout != time.Second {
		t.Fatalf("Timeout = %v", cfg.Timeout)
	}
	// Unset fields still get defaults.
	if cfg.APIPrefix != "/v1beta" {
		t.Fatalf("APIPrefix = %q", cfg.APIPrefix)
	}
}

func TestModels(t *testing.T) {
	models := Models()
	if len(models) != 2 || models[0] != ModelGemini3ProImage {
		t.Fatalf("Models() = %v", models)
	}
}
