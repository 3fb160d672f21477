package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// SearchStores searches stores. GET /stores
func SearchStores(ctx context.Context, r Requester, p types.StoreSearchParams) (*types.Response[[]types.Store], error) {
	var q urlbuild.Params
	q = urlbuild.Opt(q, "keyword", p.Keyword)
	q = pageQuery(q, p.PageParams)
	q = urlbuild.Opt(q, "platform", p.Platform)
	q = urlbuild.Opt(q, "language", p.Language)
	q = urlbuild.Opt(q, "currency", p.Currency)
	q = urlbuild.Opt(q, "biz_model", p.BizModel)
	q = urlbuild.Opt(q, "has_ads", p.HasAds)
	q = urlbuild.Opt(q, "status", p.Status)
	q = urlbuild.Opt(q, "min_traffic", p.MinTraffic)

	req := get("stores")
	req.Query = q
	return call[[]types.Store](ctx, r, req)
}

// GetStore fetches a single store by domain. GET /stores/:domain
func GetStore(ctx context.Context, r Requester, domain string) (*types.Response[types.Store], error) {
	return call[types.Store](ctx, r, get("stores", domain))
}

// GetStoreProducts lists a store's products. GET /stores/:domain/products
func GetStoreProducts(ctx context.Context, r Requester, domain string, p types.PageParams) (*types.Response[[]types.Product], error) {
	req := get("stores", domain, "products")
	req.Query = pageQuery(nil, p)
	return call[[]types.Product](ctx, r, req)
}

// GetStoreAds lists a store's ads. GET /stores/:domain/ads
func GetStoreAds(ctx context.Context, r Requester, domain string) (*types.Response[[]types.Ad], error) {
	return call[[]types.Ad](ctx, r, get("stores", domain, "ads"))
}

// GetStoreTraffic returns a store's traffic profile. GET /stores/:domain/traffic
func GetStoreTraffic(ctx context.Context, r Requester, domain string) (*types.Response[types.StoreTraffic], error) {
	return call[types.StoreTraffic](ctx, r, get("stores", domain, "traffic"))
}

// GetStoreTech returns the technologies detected on a store. GET /stores/:domain/tech
func GetStoreTech(ctx context.Context, r Requester, domain string) (*types.Response[[]types.StoreTechItem], error) {
	return call[[]types.StoreTechItem](ctx, r, get("stores", domain, "tech"))
}

// CompareStores compares several stores. GET /stores/compare?domains=a.com,b.com
func CompareStores(ctx context.Context, r Requester, domains []string) (*types.Response[[]types.Store], error) {
	req := get("stores", "compare")
	req.Query = urlbuild.List(nil, "domains", domains)
	return call[[]types.Store](ctx, r, req)
}
