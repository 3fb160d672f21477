// Package carttest provides an in-process fake of the Cart API for tests.
//
//	srv := carttest.NewServer(t)
//	srv.Handle("GET /stores", carttest.Reply{Data: []cart.Store{{Domain: "a.com"}}})
//	c, _ := cart.New("cart_sk_test", cart.WithBaseURL(srv.BaseURL()))
package carttest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// Routes served by the fake, in matching order.
var routes = []struct{ method, path string }{
	{http.MethodGet, "/stores"},
	{http.MethodGet, "/stores/compare"},
	{http.MethodGet, "/stores/{domain}"},
	{http.MethodGet, "/stores/{domain}/products"},
	{http.MethodGet, "/stores/{domain}/ads"},
	{http.MethodGet, "/stores/{domain}/traffic"},
	{http.MethodGet, "/stores/{domain}/tech"},
	{http.MethodGet, "/products"},
	{http.MethodGet, "/products/trending"},
	{http.MethodGet, "/products/{id}"},
	{http.MethodGet, "/ads"},
	{http.MethodGet, "/ads/{id}"},
	{http.MethodGet, "/suppliers"},
	{http.MethodGet, "/niches/{keyword}"},
	{http.MethodGet, "/trending"},
	{http.MethodGet, "/account"},
}

// Reply is a canned response. The zero value is a 200 with null data.
type Reply struct {
	Status    int               // default 200
	Data      any               // success payload
	Meta      map[string]any    // merged over {"request_id": <generated>}
	Usage     map[string]int    // sent as "usage" when non-nil
	ErrorCode string            // non-2xx: error.code
	Message   string            // non-2xx: error.message
	Headers   map[string]string // extra response headers
	RawBody   *string           // sent verbatim instead of an envelope
}

// RecordedRequest is what the fake saw for one call.
type RecordedRequest struct {
	Route  string            // e.g. "GET /stores/{domain}"
	Vars   map[string]string // decoded path variables
	Query  url.Values
	Header http.Header
}

// Server is a fake Cart API rooted at BaseURL().
type Server struct {
	*httptest.Server

	// APIKey, when set, makes every request without "Bearer <APIKey>" fail with 401.
	APIKey string

	mu        sync.Mutex
	replies   map[string]Reply
	requests  []RecordedRequest
	remaining int
	limit     int
	seq       int
}

// NewServer starts a fake API that reports a quota of 100 requests and
// decrements the remaining count on every call. It is closed with t.Cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{replies: map[string]Reply{}, remaining: 100, limit: 100}

	r := mux.NewRouter().UseEncodedPath()
	api := r.PathPrefix("/v1").Subrouter()
	for _, rt := range routes {
		route := rt.method + " " + rt.path
		api.HandleFunc(rt.path, s.handler(route)).Methods(rt.method)
	}
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.write(w, Reply{Status: http.StatusNotFound, ErrorCode: "not_found", Message: "no such endpoint"})
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the versioned API root to pass to cart.WithBaseURL.
func (s *Server) BaseURL() string { return s.URL + "/v1" }

// Handle sets the reply for route, written as "GET /stores/{domain}".
func (s *Server) Handle(route string, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[route] = r
}

// Requests returns every request seen so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request; it panics when there is none.
func (s *Server) LastRequest() RecordedRequest {
	reqs := s.Requests()
	return reqs[len(reqs)-1]
}

func (s *Server) handler(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		vars := map[string]string{}
		for k, v := range mux.Vars(req) {
			if dec, err := url.PathUnescape(v); err == nil {
				v = dec
			}
			vars[k] = v
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Route:  route,
			Vars:   vars,
			Query:  req.URL.Query(),
			Header: req.Header.Clone(),
		})
		reply, ok := s.replies[route]
		s.mu.Unlock()

		if s.APIKey != "" && req.Header.Get("Authorization") != "Bearer "+s.APIKey {
			reply = Reply{Status: http.StatusUnauthorized, ErrorCode: "invalid_api_key", Message: "invalid API key"}
		} else if !ok {
			reply = Reply{}
		}
		s.write(w, reply)
	}
}

func (s *Server) write(w http.ResponseWriter, r Reply) {
	s.mu.Lock()
	s.seq++
	requestID := "req_" + strconv.Itoa(s.seq)
	if s.remaining > 0 {
		s.remaining--
	}
	remaining, limit := s.remaining, s.limit
	s.mu.Unlock()

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
	for k, v := range r.Headers {
		h.Set(k, v)
	}

	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if r.RawBody != nil {
		_, _ = w.Write([]byte(*r.RawBody))
		return
	}

	var body any
	if status >= 200 && status < 300 {
		meta := map[string]any{"request_id": requestID}
		for k, v := range r.Meta {
			meta[k] = v
		}
		env := map[string]any{"data": r.Data, "meta": meta}
		if r.Usage != nil {
			env["usage"] = r.Usage
		}
		body = env
	} else {
		msg := r.Message
		if msg == "" {
			msg = fmt.Sprintf("error %d", status)
		}
		body = map[string]any{
			"error":      map[string]string{"code": r.ErrorCode, "message": msg},
			"request_id": requestID,
		}
	}
	_ = json.NewEncoder(w).Encode(body)
}
