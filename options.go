package casedex

import (
	"net/http"
	"time"
)

// Option configures the Client.
type Option interface {
	apply(*Client)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	})
}

// WithTimeout sets a per-request timeout. Ignored when WithHTTPClient
// already supplied a client with its own timeout.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(c *Client) {
		if c.httpClient == http.DefaultClient {
			c.httpClient = &http.Client{Timeout: d}
		}
	})
}
