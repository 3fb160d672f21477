// Package transport is the single path every Cart API call takes: it builds
// the URL, attaches auth and client headers, executes exactly one HTTP
// attempt, records rate-limit headers and maps the outcome to either an
// Envelope or a typed error.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	apierrors "github.com/usecart/usecart-go/internal/errors"
	"github.com/usecart/usecart-go/internal/ratelimit"
	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// HeaderClientRequestID carries a client-generated id on every request so a
// failure can be correlated even when the server never answered.
const HeaderClientRequestID = "X-Client-Request-Id"

// maxErrorMessage bounds how much of a non-JSON error body ends up in an error message.
const maxErrorMessage = 512

// Config holds everything a Transport needs. It is copied at construction.
type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string

	// HTTPClient executes the requests. Its Timeout bounds every call.
	HTTPClient *http.Client

	// Limiter, when set, paces outgoing requests on the client side.
	Limiter *rate.Limiter
}

// Request describes one API call.
type Request struct {
	Method   string
	Segments []string // path below the base URL, escaped one by one
	Query    urlbuild.Params
	Body     any // JSON-encoded when non-nil
}

// Transport executes Requests against the Cart API. It is safe for
// concurrent use; the rate-limit tracker it owns is last-writer-wins.
type Transport struct {
	baseURL string
	rc      *resty.Client
	limiter *rate.Limiter
	tracker ratelimit.Tracker

	newRequestID func() string
}

// New constructs a Transport. The resty client never retries on its own.
func New(cfg Config) *Transport {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}

	rc := resty.NewWithClient(hc).
		SetLogger(zerologAdapter{}).
		SetRetryCount(0).
		SetAuthToken(cfg.APIKey).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &Transport{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		rc:           rc,
		limiter:      cfg.Limiter,
		newRequestID: uuid.NewString,
	}
}

// RateLimit returns the most recent rate-limit snapshot, if any response
// carrying rate-limit headers has been observed.
func (t *Transport) RateLimit() (ratelimit.Info, bool) {
	return t.tracker.Current()
}

// Request performs req and returns the parsed envelope, or one of the error
// kinds from internal/errors. It never returns both and never retries.
func (t *Transport) Request(ctx context.Context, req Request) (*types.Envelope, error) {
	url := urlbuild.Build(t.baseURL, req.Segments, req.Query)
	clientID := t.newRequestID()
	op := fmt.Sprintf("%s %s", req.Method, "/"+strings.Join(req.Segments, "/"))
	start := time.Now()

	env, err := t.do(ctx, req, url, clientID, op)

	observe(req.Method, time.Since(start), err)
	if err != nil {
		if apiErr, ok := apierrors.AsAPIError(err); ok {
			log.Debug().
				Str("op", op).
				Str("kind", apiErr.Kind.String()).
				Int("status", apiErr.Status).
				Str("code", apiErr.Code).
				Str("request_id", apiErr.RequestID).
				Str("client_request_id", clientID).
				Msg("cart API call failed")
		}
		return nil, err
	}
	return env, nil
}

func (t *Transport) do(ctx context.Context, req Request, url, clientID, op string) (*types.Envelope, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, apierrors.NewNetworkError(op, clientID, err)
		}
	}

	r := t.rc.R().
		SetContext(ctx).
		SetHeader(HeaderClientRequestID, clientID)

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request body: %w", op, err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	resp, err := r.Execute(req.Method, url)
	if err != nil {
		return nil, apierrors.NewNetworkError(op, clientID, err)
	}

	// Rate-limit headers are recorded before anything can fail.
	t.tracker.Observe(resp.Header())

	status := resp.StatusCode()
	body := resp.Body()

	if status >= 200 && status < 300 {
		return parseEnvelope(status, body, clientID)
	}
	return nil, t.parseError(status, resp.Header(), body, clientID)
}

func parseEnvelope(status int, body []byte, clientID string) (*types.Envelope, error) {
	fields := apierrors.Fields{ClientRequestID: clientID}

	var env types.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apierrors.NewInvalidResponseError(status, fields, err)
	}
	fields.RequestID = env.Meta.RequestID
	if err := env.Validate(); err != nil {
		return nil, apierrors.NewInvalidResponseError(status, fields, err)
	}
	env.StatusCode = status
	return &env, nil
}

func (t *Transport) parseError(status int, h http.Header, body []byte, clientID string) error {
	fields := apierrors.Fields{ClientRequestID: clientID}
	var bodyRetryAfter json.RawMessage

	var eb types.ErrorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		fields.RequestID = string(eb.RequestID)
		bodyRetryAfter = eb.RetryAfter
		if d := eb.Detail(); d != nil {
			fields.Code = string(d.Code)
			fields.Message = string(d.Message)
			if fields.RequestID == "" {
				fields.RequestID = string(d.RequestID)
			}
			if len(bodyRetryAfter) == 0 {
				bodyRetryAfter = d.RetryAfter
			}
		}
	} else {
		// Not a JSON object (e.g. a proxy error page): keep the raw text as the message.
		fields.Message = truncate(strings.TrimSpace(string(body)), maxErrorMessage)
	}
	if fields.RequestID == "" {
		fields.RequestID = h.Get("X-Request-Id")
	}

	if status != http.StatusTooManyRequests {
		return apierrors.FromStatus(status, fields, nil, nil, nil)
	}

	retryAfter := parseRetryAfter(h.Get("Retry-After"), time.Now())
	if retryAfter == nil {
		retryAfter = parseRetryAfterBody(bodyRetryAfter)
	}
	// Prefer this response's own headers; the tracker may already hold a
	// concurrent call's snapshot.
	remaining, limit := ratelimit.FromHeader(h)
	if remaining == nil || limit == nil {
		if info, ok := t.tracker.Current(); ok {
			limit, remaining = &info.Limit, &info.Remaining
		}
	}
	return apierrors.FromStatus(status, fields, retryAfter, limit, remaining)
}

// parseRetryAfter accepts delay-seconds or an HTTP-date.
func parseRetryAfter(v string, now time.Time) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return &n
	}
	if at, err := http.ParseTime(v); err == nil {
		secs := int(math.Ceil(at.Sub(now).Seconds()))
		if secs < 0 {
			secs = 0
		}
		return &secs
	}
	return nil
}

func parseRetryAfterBody(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil && n >= 0 {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseRetryAfter(s, time.Now())
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
