package cart

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every Cart API request and response at debug level.
//
// Purpose:
//   - Troubleshoot API communication problems (timeouts, unexpected status codes, malformed envelopes)
//   - Inspect the query strings the resource methods build from optional filters
//   - Check the rate-limit and request-id headers the API sends back
//
// When to use:
//   - WithDebugLogging(true) when constructing the Client
//   - USECART_DEBUG=true or DEBUG=true environment variable, no code change needed
//   - When investigating production issues (temporarily, with log level controls)
//
// Security considerations:
//   - The Authorization header is replaced with [REDACTED] before logging
//   - Response bodies are logged verbatim and may contain account details
//   - Ensure log outputs are properly secured and not exposed
//
// Performance impact:
//   - Every body is dumped into memory and logged; disable it in production
//
// Example usage:
//
//	export USECART_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

var authHeaderRe = regexp.MustCompile(`(?mi)^(Authorization:\s*Bearer\s+)\S+`)

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

func redact(dump []byte) string {
	return authHeaderRe.ReplaceAllString(string(dump), "${1}[REDACTED]")
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - USECART_DEBUG=true (Cart-specific debug flag, also read by LoadConfig)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("USECART_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
