package api

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/usecart/usecart-go/internal/transport"
	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// mockRequester is a test helper that records requests and replies with a canned envelope or error.
type mockRequester struct {
	mu    sync.Mutex
	calls []transport.Request

	data string
	err  error
}

func (m *mockRequester) Request(_ context.Context, req transport.Request) (*types.Envelope, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &types.Envelope{Data: json.RawMessage(m.data), Meta: types.Meta{RequestID: "req-1"}, StatusCode: 200}, nil
}

// lastURL renders the most recent request against a fixed base URL.
func (m *mockRequester) lastURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	last := m.calls[len(m.calls)-1]
	return last.Method + " " + urlbuild.Build("https://api.usecart.com/v1", last.Segments, last.Query)
}

func ptr[T any](v T) *T { return &v }
