package httpx

import (
	"bytes"
	"context"
	"net/http"
)

// Do sends an HTTP request with a buffered body. A single attempt, no
// retries; cancellation is governed by the context. Callers must close the
// returned response body.
func Do(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = headers.Clone()

	return client.Do(req)
}

// DoJSON is Do with a JSON content type.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if headers == nil {
		headers = make(http.Header)
	}
	headers = headers.Clone()
	headers.Set("Content-Type", "application/json")
	return Do(ctx, client, method, url, body, headers)
}
