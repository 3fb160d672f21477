package errors

import (
	"fmt"
	"net/http"
)

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			// 400 Bad Request, 401 Unauthorized, 403 Forbidden, 404 Not Found, etc.
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Irrecoverable
	}
}

// Fields carries the diagnostic context pulled from an error response.
type Fields struct {
	Code            string
	Message         string
	RequestID       string
	ClientRequestID string
}

// FromStatus builds the error kind matching status. Missing code and message
// fall back to per-kind defaults. retryAfter, limit and remaining are only
// used for 429 responses.
func FromStatus(status int, f Fields, retryAfter, limit, remaining *int) error {
	base := APIError{
		Kind:            KindAPI,
		Status:          status,
		Code:            f.Code,
		Message:         f.Message,
		RequestID:       f.RequestID,
		ClientRequestID: f.ClientRequestID,
	}

	switch status {
	case http.StatusUnauthorized:
		base.Kind = KindAuth
		if base.Code == "" {
			base.Code = CodeAuth
		}
		if base.Message == "" {
			base.Message = "authentication failed"
		}
		return &AuthError{APIError: base}

	case http.StatusTooManyRequests:
		base.Kind = KindRateLimit
		if base.Code == "" {
			base.Code = CodeRateLimit
		}
		if base.Message == "" {
			base.Message = "rate limit exceeded"
		}
		return &RateLimitError{
			APIError:   base,
			RetryAfter: retryAfter,
			Limit:      limit,
			Remaining:  remaining,
		}
	}

	if base.Code == "" {
		base.Code = CodeUnknown
	}
	if base.Message == "" {
		base.Message = fmt.Sprintf("Cart API error: %d", status)
	}
	return &base
}

// NewNetworkError wraps a failure that happened before any response was read.
func NewNetworkError(operation, clientRequestID string, err error) *APIError {
	return &APIError{
		Kind:            KindNetwork,
		Status:          0, // no HTTP status for network errors
		Code:            CodeNetwork,
		Message:         fmt.Sprintf("%s: %v", operation, err),
		ClientRequestID: clientRequestID,
		Err:             err,
	}
}

// NewInvalidResponseError reports a response body that could not be parsed.
func NewInvalidResponseError(status int, f Fields, err error) *APIError {
	msg := f.Message
	if msg == "" {
		msg = fmt.Sprintf("could not parse response body: %v", err)
	}
	return &APIError{
		Kind:            KindInvalidResponse,
		Status:          status,
		Code:            CodeInvalidResponse,
		Message:         msg,
		RequestID:       f.RequestID,
		ClientRequestID: f.ClientRequestID,
		Err:             err,
	}
}
