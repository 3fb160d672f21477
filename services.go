package cart

import (
	"context"

	"github.com/usecart/usecart-go/internal/api"
)

// --------------------------------------------------------------------
// Resource namespaces - delegated to internal/api
// --------------------------------------------------------------------

// StoresService groups the store endpoints.
type StoresService struct{ r api.Requester }

// Search searches stores. Nil filters are not sent.
func (s *StoresService) Search(ctx context.Context, p StoreSearchParams) (*Response[[]Store], error) {
	return api.SearchStores(ctx, s.r, p)
}

// Get fetches a single store by domain.
func (s *StoresService) Get(ctx context.Context, domain string) (*Response[Store], error) {
	return api.GetStore(ctx, s.r, domain)
}

// Products lists the products of a store.
func (s *StoresService) Products(ctx context.Context, domain string, p PageParams) (*Response[[]Product], error) {
	return api.GetStoreProducts(ctx, s.r, domain, p)
}

// Ads lists the ads of a store.
func (s *StoresService) Ads(ctx context.Context, domain string) (*Response[[]Ad], error) {
	return api.GetStoreAds(ctx, s.r, domain)
}

// Traffic returns the traffic profile of a store.
func (s *StoresService) Traffic(ctx context.Context, domain string) (*Response[StoreTraffic], error) {
	return api.GetStoreTraffic(ctx, s.r, domain)
}

// Tech returns the technologies detected on a store.
func (s *StoresService) Tech(ctx context.Context, domain string) (*Response[[]StoreTechItem], error) {
	return api.GetStoreTech(ctx, s.r, domain)
}

// Compare compares several stores side by side.
func (s *StoresService) Compare(ctx context.Context, domains []string) (*Response[[]Store], error) {
	return api.CompareStores(ctx, s.r, domains)
}

// ProductsService groups the product endpoints.
type ProductsService struct{ r api.Requester }

// Search searches products.
func (s *ProductsService) Search(ctx context.Context, p ProductSearchParams) (*Response[[]Product], error) {
	return api.SearchProducts(ctx, s.r, p)
}

// Get fetches a product by ID.
func (s *ProductsService) Get(ctx context.Context, id string) (*Response[Product], error) {
	return api.GetProduct(ctx, s.r, id)
}

// Trending lists trending products.
func (s *ProductsService) Trending(ctx context.Context, p TrendingParams) (*Response[[]Product], error) {
	return api.TrendingProducts(ctx, s.r, p)
}

// AdsService groups the ad endpoints.
type AdsService struct{ r api.Requester }

// Search searches ads.
func (s *AdsService) Search(ctx context.Context, p AdSearchParams) (*Response[[]Ad], error) {
	return api.SearchAds(ctx, s.r, p)
}

// Get fetches an ad by ID.
func (s *AdsService) Get(ctx context.Context, id string) (*Response[Ad], error) {
	return api.GetAd(ctx, s.r, id)
}

// SuppliersService groups the supplier endpoints.
type SuppliersService struct{ r api.Requester }

// Search searches suppliers.
func (s *SuppliersService) Search(ctx context.Context, p SupplierSearchParams) (*Response[[]Supplier], error) {
	return api.SearchSuppliers(ctx, s.r, p)
}

// NichesService groups the niche endpoints.
type NichesService struct{ r api.Requester }

// Get returns the overview for a niche keyword.
func (s *NichesService) Get(ctx context.Context, keyword string) (*Response[NicheOverview], error) {
	return api.GetNiche(ctx, s.r, keyword)
}
