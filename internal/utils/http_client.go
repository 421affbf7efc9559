package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent by clients that do not set their own.
const DefaultUserAgent = "go-safe-share"

// HTTPClient embeds *resty.Client so adapters can build requests directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption adjusts a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL resolves relative request paths against baseURL.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(baseURL) }
}

// WithTimeout bounds every request. Zero leaves the client without a
// timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) { c.SetHeader("User-Agent", userAgent) }
}

// NewHTTPClient returns an independent client with its own connection pool.
// Redirects are not followed: a blob URL that redirects elsewhere would
// otherwise carry the bearer token to a foreign host.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetHeader("User-Agent", DefaultUserAgent).
		SetRedirectPolicy(resty.NoRedirectPolicy())

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
