// Package errors defines the error taxonomy returned by the Cart SDK and
// classifies each failure as recoverable or irrecoverable so callers can
// decide whether a retry makes sense.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed when retried with backoff.
	// Examples: 429 Too Many Requests, 503 Service Unavailable, connection resets.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way every time.
	// Examples: 401 Unauthorized, 404 Not Found, a malformed response body.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Kind tags the failure so callers can branch without inspecting status codes.
type Kind int

const (
	// KindAPI is a non-2xx response that has no more specific kind.
	KindAPI Kind = iota
	// KindNetwork is a transport failure: DNS, refused connection, timeout, cancellation.
	KindNetwork
	// KindInvalidResponse is a response whose body could not be understood.
	KindInvalidResponse
	// KindAuth is a 401 response.
	KindAuth
	// KindRateLimit is a 429 response.
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindInvalidResponse:
		return "invalid_response"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Default codes used when the server did not send one.
const (
	CodeUnknown         = "unknown_error"
	CodeAuth            = "auth_error"
	CodeRateLimit       = "rate_limit_exceeded"
	CodeNetwork         = "network_error"
	CodeInvalidResponse = "invalid_response"
)

// APIError is the base error for every failed Cart API call.
type APIError struct {
	Kind            Kind
	Status          int    // HTTP status code (0 when no response was received)
	Code            string // server-defined short identifier
	Message         string
	RequestID       string // server correlation id, empty when unknown
	ClientRequestID string // X-Client-Request-Id sent with the request
	Err             error  // underlying cause, if any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if e.Err != nil && msg == "" {
		msg = e.Err.Error()
	}
	s := fmt.Sprintf("cart: %s", msg)
	if e.Status > 0 {
		s = fmt.Sprintf("cart: HTTP %d %s: %s", e.Status, e.Code, msg)
	} else if e.Code != "" {
		s = fmt.Sprintf("cart: %s: %s", e.Code, msg)
	}
	if e.RequestID != "" {
		s += fmt.Sprintf(" (request_id=%s)", e.RequestID)
	}
	return s
}

// Unwrap returns the underlying cause for error chain compatibility.
func (e *APIError) Unwrap() error { return e.Err }

// Category classifies the error for retry policies.
func (e *APIError) Category() ErrorCategory {
	switch e.Kind {
	case KindNetwork, KindRateLimit:
		return Recoverable
	case KindAPI:
		return getHTTPErrorCategory(e.Status)
	default:
		return Irrecoverable
	}
}

// AuthError is returned for 401 responses. The API key is missing, invalid or revoked.
type AuthError struct {
	APIError
}

// Unwrap exposes the embedded base error so errors.As(err, **APIError) matches.
func (e *AuthError) Unwrap() error { return &e.APIError }

// RateLimitError is returned for 429 responses.
type RateLimitError struct {
	APIError

	// RetryAfter is the number of seconds to wait, nil when the server did not say.
	RetryAfter *int
	// Limit and Remaining mirror the rate-limit snapshot at the time of failure.
	Limit     *int
	Remaining *int
}

// Unwrap exposes the embedded base error so errors.As(err, **APIError) matches.
func (e *RateLimitError) Unwrap() error { return &e.APIError }

func (e *RateLimitError) Error() string {
	s := e.APIError.Error()
	if e.RetryAfter != nil {
		s += fmt.Sprintf(" (retry after %ds)", *e.RetryAfter)
	}
	return s
}

// AsAPIError returns the base error for any kind in err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsIrrecoverable returns true if the error should not be retried.
// Errors that did not come from the SDK are treated as irrecoverable.
func IsIrrecoverable(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Category() == Irrecoverable
	}
	return true
}
