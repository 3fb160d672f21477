package api

import (
	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

func pageQuery(q urlbuild.Params, p types.PageParams) urlbuild.Params {
	q = urlbuild.Opt(q, "page", p.Page)
	q = urlbuild.Opt(q, "per_page", p.PerPage)
	return urlbuild.Opt(q, "sort", p.Sort)
}

func trendingQuery(p types.TrendingParams) urlbuild.Params {
	var q urlbuild.Params
	q = urlbuild.Opt(q, "page", p.Page)
	q = urlbuild.Opt(q, "per_page", p.PerPage)
	return urlbuild.Opt(q, "category", p.Category)
}
