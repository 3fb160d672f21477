package cart

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Client during construction in New.
//
// Transport-related options (like debug logging) are assembled after every
// option has run, so their order does not matter.
type Option func(*Client) error

// WithBaseURL overrides the API root, e.g. for a staging environment or a
// test server. The URL must be absolute; a trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("%w: empty", ErrInvalidBaseURL)
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc. The client is copied, never
// modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
		return nil
	}
}

// WithUserAgent replaces the default "usecart-go/<version>" User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled
// is true.
//
// The dump goes through the global zerolog logger, so the logger level must
// also allow debug output. The Authorization header is redacted, but bodies
// are logged as-is: do not enable this in production.
//
// Passing false does not override USECART_DEBUG=true or DEBUG=true in the
// environment.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithRequestLimiter paces outgoing requests through l. A call whose context
// ends while waiting for a token fails with a network-kind error and sends
// nothing.
func WithRequestLimiter(l *rate.Limiter) Option {
	return func(c *Client) error {
		if l == nil {
			return fmt.Errorf("nil rate limiter")
		}
		c.limiter = l
		return nil
	}
}
