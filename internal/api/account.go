package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
)

// Trending returns trending stores and products. GET /trending
func Trending(ctx context.Context, r Requester, p types.TrendingParams) (*types.Response[types.TrendingData], error) {
	req := get("trending")
	req.Query = trendingQuery(p)
	return call[types.TrendingData](ctx, r, req)
}

// GetAccount returns the authenticated account. GET /account
func GetAccount(ctx context.Context, r Requester) (*types.Response[types.Account], error) {
	return call[types.Account](ctx, r, get("account"))
}
