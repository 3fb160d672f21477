package types

// ------------------------------
// Request Types
// ------------------------------
//
// Optional filters are pointers: nil means the filter is not sent at all.

// PageParams controls pagination and ordering of list endpoints.
type PageParams struct {
	Page    *int
	PerPage *int
	Sort    *string
}

// StoreSearchParams filters GET /stores.
type StoreSearchParams struct {
	Keyword *string
	PageParams
	Platform   *string
	Language   *string
	Currency   *string
	BizModel   *string
	HasAds     *bool
	Status     *string
	MinTraffic *int
}

// ProductSearchParams filters GET /products.
type ProductSearchParams struct {
	Keyword *string
	PageParams
	MinPrice *float64
	MaxPrice *float64
	Currency *string
}

// TrendingParams filters GET /trending and GET /products/trending.
type TrendingParams struct {
	Page     *int
	PerPage  *int
	Category *string
}

// AdSearchParams filters GET /ads.
type AdSearchParams struct {
	Keyword *string
	PageParams
	Platform    *string
	StoreDomain *string
}

// SupplierSearchParams filters GET /suppliers.
type SupplierSearchParams struct {
	Keyword *string
	PageParams
	Location *string
	Type     *string
}
