package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// SearchProducts searches products. GET /products
func SearchProducts(ctx context.Context, r Requester, p types.ProductSearchParams) (*types.Response[[]types.Product], error) {
	var q urlbuild.Params
	q = urlbuild.Opt(q, "keyword", p.Keyword)
	q = pageQuery(q, p.PageParams)
	q = urlbuild.Opt(q, "min_price", p.MinPrice)
	q = urlbuild.Opt(q, "max_price", p.MaxPrice)
	q = urlbuild.Opt(q, "currency", p.Currency)

	req := get("products")
	req.Query = q
	return call[[]types.Product](ctx, r, req)
}

// GetProduct fetches a product by ID. GET /products/:id
func GetProduct(ctx context.Context, r Requester, id string) (*types.Response[types.Product], error) {
	return call[types.Product](ctx, r, get("products", id))
}

// TrendingProducts lists trending products. GET /products/trending
func TrendingProducts(ctx context.Context, r Requester, p types.TrendingParams) (*types.Response[[]types.Product], error) {
	req := get("products", "trending")
	req.Query = trendingQuery(p)
	return call[[]types.Product](ctx, r, req)
}
