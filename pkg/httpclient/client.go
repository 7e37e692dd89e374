package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

// HTTPClient is the outbound surface the SMS transport posts through.
type HTTPClient interface {
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error)
}

type httpClient struct {
	inner *http.Client
}

// NewHTTPClient returns a client with a hard per-request timeout. The
// timeout bounds the whole exchange, connect through body read.
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &httpClient{inner: &http.Client{Timeout: timeout}}
}

func (c *httpClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return c.inner.Do(req)
}
