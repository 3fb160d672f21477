// Package ratelimit keeps the latest rate-limit snapshot reported by the API.
package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
)

// Header names the API uses to report quota on every response.
const (
	HeaderRemaining = "X-RateLimit-Remaining"
	HeaderLimit     = "X-RateLimit-Limit"
)

// Info is an immutable rate-limit snapshot.
type Info struct {
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

// Tracker holds the most recently observed Info. The zero value is ready to
// use and reports no snapshot until the first Update. Concurrent updates are
// last-writer-wins.
type Tracker struct {
	current atomic.Pointer[Info]
}

// Update overwrites the snapshot. Nothing changes unless both values are known.
func (t *Tracker) Update(remaining, limit *int) {
	if remaining == nil || limit == nil {
		return
	}
	info := &Info{Remaining: *remaining, Limit: *limit}
	t.current.Store(info)
	remainingGauge.Set(float64(info.Remaining))
	limitGauge.Set(float64(info.Limit))
}

// Current returns the latest snapshot and whether one has been observed.
func (t *Tracker) Current() (Info, bool) {
	info := t.current.Load()
	if info == nil {
		return Info{}, false
	}
	return *info, true
}

// Observe reads the rate-limit headers from h and updates the tracker.
// Absent or malformed headers are ignored.
func (t *Tracker) Observe(h http.Header) {
	t.Update(FromHeader(h))
}

// FromHeader parses the rate-limit headers of a single response. Either
// value is nil when its header is absent or not an integer.
func FromHeader(h http.Header) (remaining, limit *int) {
	return parseHeader(h, HeaderRemaining), parseHeader(h, HeaderLimit)
}

func parseHeader(h http.Header, name string) *int {
	raw := strings.TrimSpace(h.Get(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
