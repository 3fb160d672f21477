package cart

import (
	"github.com/usecart/usecart-go/internal/ratelimit"
	"github.com/usecart/usecart-go/internal/transport"
	"github.com/usecart/usecart-go/internal/types"
	"github.com/usecart/usecart-go/internal/urlbuild"
)

// Public type aliases so SDK consumers can import only the cart package.
type (
	// Envelope and its parts
	Envelope             = types.Envelope
	Meta                 = types.Meta
	Usage                = types.Usage
	Response[T any]      = types.Response[T]
	RateLimitInfo        = ratelimit.Info
	Request              = transport.Request
	Params               = urlbuild.Params
	PageParams           = types.PageParams
	StoreSearchParams    = types.StoreSearchParams
	ProductSearchParams  = types.ProductSearchParams
	AdSearchParams       = types.AdSearchParams
	SupplierSearchParams = types.SupplierSearchParams
	TrendingParams       = types.TrendingParams

	// Domain entities
	Store         = types.Store
	Product       = types.Product
	Ad            = types.Ad
	Supplier      = types.Supplier
	NicheOverview = types.NicheOverview
	Account       = types.Account
	TrendingData  = types.TrendingData
	StoreTraffic  = types.StoreTraffic
	StoreTechItem = types.StoreTechItem
	TrafficGeo    = types.TrafficGeo
	TrafficSource = types.TrafficSource
)

// Decode turns a raw Envelope from Client.Request into a typed Response.
func Decode[T any](env *Envelope) (*Response[T], error) {
	return types.Decode[T](env)
}

// OptParam appends key with *v to p for Client.Request, or an absent entry
// that is never sent when v is nil.
func OptParam[T any](p Params, key string, v *T) Params { return urlbuild.Opt(p, key, v) }

// ListParam appends key with the comma-joined values to p for Client.Request,
// or an absent entry when values is nil.
func ListParam(p Params, key string, values []string) Params { return urlbuild.List(p, key, values) }

// Ptr returns a pointer to v, for filling optional filters.
func Ptr[T any](v T) *T { return &v }

// Errors re-exported in errors.go
