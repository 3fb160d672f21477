package api

import (
	"context"

	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// SearchSuppliers searches suppliers. GET /suppliers
func SearchSuppliers(ctx context.Context, r Requester, p types.SupplierSearchParams) (*types.Response[[]types.Supplier], error) {
	var q urlbuild.Params
	q = urlbuild.Opt(q, "keyword", p.Keyword)
	q = pageQuery(q, p.PageParams)
	q = urlbuild.Opt(q, "location", p.Location)
	q = urlbuild.Opt(q, "type", p.Type)

	req := get("suppliers")
	req.Query = q
	return call[[]types.Supplier](ctx, r, req)
}
