// Package api maps each Cart endpoint onto a transport.Request. The
// functions shape paths and query strings only; every failure comes from the
// transport unchanged.
package api

import (
	"context"
	"net/http"

	apierrors "github.com/usecart/usecart-go/internal/errors"
	"github.com/usecart/usecart-go/internal/transport"
	"github.com/usecart/usecart-go/internal/types"
)

// Requester is the single entry point the endpoint functions depend on.
type Requester interface {
	Request(ctx context.Context, req transport.Request) (*types.Envelope, error)
}

// call issues req and decodes the envelope data into T.
func call[T any](ctx context.Context, r Requester, req transport.Request) (*types.Response[T], error) {
	env, err := r.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	resp, err := types.Decode[T](env)
	if err != nil {
		return nil, apierrors.NewInvalidResponseError(env.StatusCode, apierrors.Fields{RequestID: env.Meta.RequestID}, err)
	}
	return resp, nil
}

func get(segments ...string) transport.Request {
	return transport.Request{Method: http.MethodGet, Segments: segments}
}
