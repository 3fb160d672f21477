package cart

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okEnvelope(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"data":{"email":"me@example.com"},"meta":{"request_id":"r"}}`)),
		Request:    r,
	}, nil
}

func TestOptions(t *testing.T) {
	c := &Client{http: &http.Client{}}
	require.NoError(t, WithHTTPTimeout(5*time.Second)(c))
	assert.Equal(t, 5*time.Second, c.http.Timeout)

	require.NoError(t, WithUserAgent("my-app/1.0")(c))
	assert.Equal(t, "my-app/1.0", c.userAgent)
	assert.Error(t, WithUserAgent("")(c))

	require.NoError(t, WithBaseURL("https://staging.usecart.com/v1")(c))
	assert.Equal(t, "https://staging.usecart.com/v1", c.baseURL)
	assert.ErrorIs(t, WithBaseURL("")(c), ErrInvalidBaseURL)

	l := rate.NewLimiter(rate.Limit(10), 1)
	require.NoError(t, WithRequestLimiter(l)(c))
	assert.Same(t, l, c.limiter)
	assert.Error(t, WithRequestLimiter(nil)(c))

	require.NoError(t, WithDebugLogging(false)(c))
	assert.False(t, c.debug)
	require.NoError(t, WithDebugLogging(true)(c))
	assert.True(t, c.debug)
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("USECART_DEBUG", "true")
	c, err := New("cart_sk_test")
	require.NoError(t, err)
	assert.True(t, c.debug)
}

func TestDebugTransport_LogsAndRedacts(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	c, err := New("cart_sk_secret",
		WithHTTPClient(&http.Client{Transport: roundTripFunc(okEnvelope)}),
		WithDebugLogging(true))
	require.NoError(t, err)

	acct, err := c.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", acct.Data.Email)

	out := buf.String()
	assert.Contains(t, out, "HTTP request")
	assert.Contains(t, out, "HTTP response")
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "cart_sk_secret")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	_, err := dt.RoundTrip(req)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedact(t *testing.T) {
	t.Parallel()
	dump := "GET /v1/account HTTP/1.1\r\nHost: api.usecart.com\r\nAuthorization: Bearer cart_sk_abc\r\n\r\n"
	got := redact([]byte(dump))
	assert.NotContains(t, got, "cart_sk_abc")
	assert.Contains(t, got, "Authorization: Bearer [REDACTED]")
	assert.Contains(t, got, "Host: api.usecart.com")
}
