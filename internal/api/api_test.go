package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/usecart/usecart-go/internal/errors"
	"github.com/usecart/usecart-go/internal/types"
)

const base = "GET https://api.usecart.com/v1"

func TestSearchStores_OmitsAbsentFilters(t *testing.T) {
	t.Parallel()
	m := &mockRequester{data: `[{"domain":"a.com"}]`}
	resp, err := SearchStores(context.Background(), m, types.StoreSearchParams{
		Keyword:  ptr("fitness"),
		Platform: ptr("shopify"),
	})
	require.NoError(t, err)
	assert.Equal(t, base+"/stores?keyword=fitness&platform=shopify", m.lastURL())
	assert.Equal(t, []types.Store{{Domain: "a.com"}}, resp.Data)
	assert.Equal(t, "req-1", resp.Meta.RequestID)
}

func TestSearchStores_AllFilters(t *testing.T) {
	t.Parallel()
	m := &mockRequester{data: `[]`}
	_, err := SearchStores(context.Background(), m, types.StoreSearchParams{
		Keyword:    ptr("yoga"),
		PageParams: types.PageParams{Page: ptr(2), PerPage: ptr(50), Sort: ptr("traffic")},
		Platform:   ptr("shopify"),
		Language:   ptr("en"),
		Currency:   ptr("USD"),
		BizModel:   ptr("dropshipping"),
		HasAds:     ptr(false),
		Status:     ptr("live"),
		MinTraffic: ptr(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, base+"/stores?keyword=yoga&page=2&per_page=50&sort=traffic&platform=shopify&language=en&currency=USD&biz_model=dropshipping&has_ads=false&status=live&min_traffic=1000", m.lastURL())
}

func TestStoreSubresources(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := &mockRequester{data: `{}`}

	_, err := GetStore(ctx, m, "shop.example.com/de")
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/shop.example.com%2Fde", m.lastURL())

	m.data = `[]`
	_, err = GetStoreProducts(ctx, m, "a.com", types.PageParams{PerPage: ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/a.com/products?per_page=10", m.lastURL())

	_, err = GetStoreAds(ctx, m, "a.com")
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/a.com/ads", m.lastURL())

	_, err = GetStoreTech(ctx, m, "a.com")
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/a.com/tech", m.lastURL())

	m.data = `{"monthly_visitors":10,"traffic_by_geo":[{"country":"US","percentage":55.5}]}`
	traffic, err := GetStoreTraffic(ctx, m, "a.com")
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/a.com/traffic", m.lastURL())
	assert.Equal(t, 10, traffic.Data.MonthlyVisitors)
	assert.Equal(t, []types.TrafficGeo{{Country: "US", Percentage: 55.5}}, traffic.Data.TrafficByGeo)

	m.data = `[]`
	_, err = CompareStores(ctx, m, []string{"a.com", "b.com"})
	require.NoError(t, err)
	assert.Equal(t, base+"/stores/compare?domains=a.com,b.com", m.lastURL())
}

func TestProductsAdsSuppliersNiches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := &mockRequester{data: `[]`}

	_, err := SearchProducts(ctx, m, types.ProductSearchParams{Keyword: ptr("mug"), MinPrice: ptr(9.5), MaxPrice: ptr(20.0)})
	require.NoError(t, err)
	assert.Equal(t, base+"/products?keyword=mug&min_price=9.5&max_price=20", m.lastURL())

	_, err = TrendingProducts(ctx, m, types.TrendingParams{Category: ptr("home & garden")})
	require.NoError(t, err)
	assert.Equal(t, base+"/products/trending?category=home%20%26%20garden", m.lastURL())

	m.data = `{"id":"p 1"}`
	p, err := GetProduct(ctx, m, "p 1")
	require.NoError(t, err)
	assert.Equal(t, base+"/products/p%201", m.lastURL())
	assert.Equal(t, "p 1", p.Data.ID)

	m.data = `[]`
	_, err = SearchAds(ctx, m, types.AdSearchParams{StoreDomain: ptr("a.com")})
	require.NoError(t, err)
	assert.Equal(t, base+"/ads?store_domain=a.com", m.lastURL())

	m.data = `{"id":"ad1"}`
	_, err = GetAd(ctx, m, "ad1")
	require.NoError(t, err)
	assert.Equal(t, base+"/ads/ad1", m.lastURL())

	m.data = `[]`
	_, err = SearchSuppliers(ctx, m, types.SupplierSearchParams{Location: ptr("CN"), Type: ptr("manufacturer")})
	require.NoError(t, err)
	assert.Equal(t, base+"/suppliers?location=CN&type=manufacturer", m.lastURL())

	m.data = `{"keyword":"pet toys","total_stores":3}`
	niche, err := GetNiche(ctx, m, "pet toys")
	require.NoError(t, err)
	assert.Equal(t, base+"/niches/pet%20toys", m.lastURL())
	assert.Equal(t, 3, niche.Data.TotalStores)
}

func TestTrendingAndAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := &mockRequester{data: `{"stores":[{"domain":"a.com"}],"products":[]}`}

	tr, err := Trending(ctx, m, types.TrendingParams{Page: ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, base+"/trending?page=1", m.lastURL())
	assert.Len(t, tr.Data.Stores, 1)

	m.data = `{"email":"me@example.com","plan":"pro","requests_today":3,"requests_limit":1000}`
	acct, err := GetAccount(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, base+"/account", m.lastURL())
	assert.Equal(t, types.Account{Email: "me@example.com", Plan: "pro", RequestsToday: 3, RequestsLimit: 1000}, acct.Data)
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	t.Parallel()
	sentinel := apierrors.FromStatus(404, apierrors.Fields{Code: "not_found"}, nil, nil, nil)
	m := &mockRequester{err: sentinel}

	_, err := GetStore(context.Background(), m, "missing.com")
	assert.Same(t, sentinel, err)
}

func TestDecodeMismatchIsInvalidResponse(t *testing.T) {
	t.Parallel()
	m := &mockRequester{data: `{"domain":"a.com"}`}
	_, err := SearchStores(context.Background(), m, types.StoreSearchParams{})

	apiErr, ok := apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindInvalidResponse, apiErr.Kind)
	assert.Equal(t, "req-1", apiErr.RequestID)
	assert.False(t, errors.Is(err, context.Canceled))
}
