// Package cart is a Go client for the Cart e-commerce intelligence API.
//
//	c, err := cart.New("cart_sk_...")
//	if err != nil {
//		return err
//	}
//	stores, err := c.Stores.Search(ctx, cart.StoreSearchParams{Keyword: cart.Ptr("fitness")})
//
// Every call returns either a typed Response or an error that can be
// inspected with errors.As against *APIError, *AuthError or *RateLimitError.
package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/usecart/usecart-go/internal/api"
	"github.com/usecart/usecart-go/internal/transport"
)

// Version is reported in the User-Agent header.
const Version = "0.1.0"

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.usecart.com/v1"

// KeyPrefix is the prefix every Cart secret key starts with.
const KeyPrefix = "cart_sk_"

const defaultTimeout = 30 * time.Second

var (
	// ErrMissingAPIKey is returned by New when the API key is empty.
	ErrMissingAPIKey = errors.New("an API key is required: cart.New(\"cart_sk_...\")")
	// ErrInvalidBaseURL is returned by New when the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the Cart API. It is safe for concurrent use. Each Client
// owns its own rate-limit snapshot.
type Client struct {
	baseURL   string
	apiKey    string // sent as a bearer token on every request
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	debug     bool

	transport *transport.Transport

	Stores    *StoresService
	Products  *ProductsService
	Ads       *AdsService
	Suppliers *SuppliersService
	Niches    *NichesService
}

// New constructs a Client for apiKey. Additional options can be provided
// via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !strings.HasPrefix(apiKey, KeyPrefix) {
		log.Warn().Str("expected_prefix", KeyPrefix).Msg("cart: API key does not look like a Cart secret key")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "usecart-go/" + Version,
		http:      &http.Client{Timeout: defaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := validateBaseURL(c.baseURL); err != nil {
		return nil, err
	}

	// Work on a copy so a caller-supplied *http.Client is never mutated.
	hc := *c.http
	if c.debug {
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = &debugTransport{base: base}
	}

	c.transport = transport.New(transport.Config{
		BaseURL:    c.baseURL,
		APIKey:     c.apiKey,
		UserAgent:  c.userAgent,
		HTTPClient: &hc,
		Limiter:    c.limiter,
	})

	c.Stores = &StoresService{r: c.transport}
	c.Products = &ProductsService{r: c.transport}
	c.Ads = &AdsService{r: c.transport}
	c.Suppliers = &SuppliersService{r: c.transport}
	c.Niches = &NichesService{r: c.transport}
	return c, nil
}

// NewFromEnv constructs a Client from USECART_* environment variables (see
// LoadConfig). Options are applied after the environment configuration.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIKey, append(cfg.options(), opts...)...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidBaseURL, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w %q: must be an absolute http(s) URL", ErrInvalidBaseURL, raw)
	}
	return nil
}

// RateLimit returns the rate-limit snapshot from the most recent response
// that carried rate-limit headers. ok is false until one has been seen.
func (c *Client) RateLimit() (info RateLimitInfo, ok bool) {
	return c.transport.RateLimit()
}

// Request sends an arbitrary request through the same path as the typed
// methods. Use Decode to turn the envelope into a typed Response.
func (c *Client) Request(ctx context.Context, req Request) (*Envelope, error) {
	return c.transport.Request(ctx, req)
}

// Trending returns trending stores and products. GET /trending
func (c *Client) Trending(ctx context.Context, p TrendingParams) (*Response[TrendingData], error) {
	return api.Trending(ctx, c.transport, p)
}

// Account returns the authenticated account. GET /account
func (c *Client) Account(ctx context.Context) (*Response[Account], error) {
	return api.GetAccount(ctx, c.transport)
}
