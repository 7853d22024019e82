// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"
)

// Options configures an outbound HTTP client. Headers listed here are
// applied to every request unless the request already sets them.
type Options struct {
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string
}

type Client struct {
	httpClient *http.Client
	opts       Options
}

func NewClient(opts Options) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		opts: opts,
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.applyDefaultHeaders(req)
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.Do(req)
}

func (c *Client) applyDefaultHeaders(req *http.Request) {
	if c.opts.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}
	if c.opts.AcceptLanguage != "" && req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", c.opts.AcceptLanguage)
	}
}
