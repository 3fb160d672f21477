package cart

import (
	"errors"

	apierrors "github.com/usecart/usecart-go/internal/errors"
)

// Re-export the error taxonomy so callers match against a single package.
type (
	// APIError is the base error for every failed call. errors.As with
	// *APIError matches all kinds, including auth and rate-limit failures.
	APIError = apierrors.APIError
	// AuthError is returned for 401 responses.
	AuthError = apierrors.AuthError
	// RateLimitError is returned for 429 responses and carries RetryAfter.
	RateLimitError = apierrors.RateLimitError
	// ErrorKind tags an APIError.
	ErrorKind = apierrors.Kind
)

const (
	KindAPI             = apierrors.KindAPI
	KindNetwork         = apierrors.KindNetwork
	KindInvalidResponse = apierrors.KindInvalidResponse
	KindAuth            = apierrors.KindAuth
	KindRateLimit       = apierrors.KindRateLimit
)

// AsAPIError returns the base error of any kind found in err's chain.
func AsAPIError(err error) (*APIError, bool) { return apierrors.AsAPIError(err) }

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsRateLimitError reports whether err is a rate-limit failure.
func IsRateLimitError(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

// IsRetryable reports whether retrying the call that produced err may succeed.
func IsRetryable(err error) bool {
	if _, ok := apierrors.AsAPIError(err); !ok {
		return false
	}
	return !apierrors.IsIrrecoverable(err)
}
