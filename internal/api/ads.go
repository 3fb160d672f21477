package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// SearchAds searches ads. GET /ads
func SearchAds(ctx context.Context, r Requester, p types.AdSearchParams) (*types.Response[[]types.Ad], error) {
	var q urlbuild.Params
	q = urlbuild.Opt(q, "keyword", p.Keyword)
	q = pageQuery(q, p.PageParams)
	q = urlbuild.Opt(q, "platform", p.Platform)
	q = urlbuild.Opt(q, "store_domain", p.StoreDomain)

	req := get("ads")
	req.Query = q
	return call[[]types.Ad](ctx, r, req)
}

// GetAd fetches an ad by ID. GET /ads/:id
func GetAd(ctx context.Context, r Requester, id string) (*types.Response[types.Ad], error) {
	return call[types.Ad](ctx, r, get("ads", id))
}
