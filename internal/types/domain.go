package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Store is an online store tracked by Cart.
type Store struct {
	Domain               string  `json:"domain"`
	Platform             string  `json:"platform,omitempty"`
	Currency             string  `json:"currency,omitempty"`
	ProductsCount        int     `json:"products_count,omitempty"`
	VendorsCount         int     `json:"vendors_count,omitempty"`
	MonthlyVisitors      int     `json:"monthly_visitors,omitempty"`
	MonthlyVisitorsTrend float64 `json:"monthly_visitors_trend,omitempty"`
	BounceRate           float64 `json:"bounce_rate,omitempty"`
	AvgVisitLength       float64 `json:"avg_visit_length,omitempty"`
	PagesPerVisit        float64 `json:"pages_per_visit,omitempty"`
	Language             string  `json:"language,omitempty"`
	MetaTitle            string  `json:"meta_title,omitempty"`
	MetaDescription      string  `json:"meta_description,omitempty"`
	IsLive               bool    `json:"is_live,omitempty"`
	IsDropshipping       bool    `json:"is_dropshipping,omitempty"`
	IsPOD                bool    `json:"is_pod,omitempty"`
	Facebook             *string `json:"facebook,omitempty"`
	Twitter              *string `json:"twitter,omitempty"`
	Instagram            *string `json:"instagram,omitempty"`
	CreatedAt            string  `json:"created_at,omitempty"`
}

// Product is a product listed by a store.
type Product struct {
	ID           string  `json:"id"`
	StoreDomain  string  `json:"store_domain,omitempty"`
	Title        string  `json:"title,omitempty"`
	Handle       string  `json:"handle,omitempty"`
	Image        string  `json:"image,omitempty"`
	Price        float64 `json:"price,omitempty"`
	InitialPrice float64 `json:"initial_price,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Vendor       string  `json:"vendor,omitempty"`
	AddedAt      string  `json:"added_at,omitempty"`
}

// TrafficGeo is the share of a store's visitors from one country.
type TrafficGeo struct {
	Country    string  `json:"country"`
	Percentage float64 `json:"percentage"`
}

// TrafficSource splits a store's visitors by acquisition channel.
type TrafficSource struct {
	Direct    float64 `json:"direct"`
	Search    float64 `json:"search"`
	Social    float64 `json:"social"`
	Mail      float64 `json:"mail"`
	Display   float64 `json:"display"`
	Referrals float64 `json:"referrals"`
}

// StoreTraffic is the traffic profile of a store.
type StoreTraffic struct {
	MonthlyVisitors int            `json:"monthly_visitors,omitempty"`
	Trend           float64        `json:"trend,omitempty"`
	BounceRate      float64        `json:"bounce_rate,omitempty"`
	AvgVisitLength  float64        `json:"avg_visit_length,omitempty"`
	PagesPerVisit   float64        `json:"pages_per_visit,omitempty"`
	TrafficByGeo    []TrafficGeo   `json:"traffic_by_geo,omitempty"`
	TrafficBySource *TrafficSource `json:"traffic_by_source,omitempty"`
}

// StoreTechItem is one technology detected on a store.
type StoreTechItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Ad is an advertisement attributed to a store.
type Ad struct {
	ID          string `json:"id"`
	StoreDomain string `json:"store_domain,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Image       string `json:"image,omitempty"`
	LandingURL  string `json:"landing_url,omitempty"`
	FirstSeen   string `json:"first_seen,omitempty"`
	LastSeen    string `json:"last_seen,omitempty"`
}

// Supplier is a product supplier.
type Supplier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type,omitempty"`
	ProductTypes []string `json:"product_types,omitempty"`
}

// NicheOverview summarises a market niche for a keyword.
type NicheOverview struct {
	Keyword          string    `json:"keyword"`
	TotalStores      int       `json:"total_stores,omitempty"`
	TotalProducts    int       `json:"total_products,omitempty"`
	AvgPrice         float64   `json:"avg_price,omitempty"`
	TopStores        []Store   `json:"top_stores,omitempty"`
	TrendingProducts []Product `json:"trending_products,omitempty"`
}

// Account is the authenticated API account.
type Account struct {
	Email         string `json:"email"`
	Plan          string `json:"plan"`
	RequestsToday int    `json:"requests_today"`
	RequestsLimit int    `json:"requests_limit"`
}

// TrendingData holds the currently trending stores and products.
type TrendingData struct {
	Stores   []Store   `json:"stores"`
	Products []Product `json:"products"`
}
