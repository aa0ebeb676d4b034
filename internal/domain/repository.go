package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Page is a fetched retailer page
type Page struct {
	URL        string
	StatusCode int
	Body       string
}

// CatalogClient fetches retailer pages. Implementations must send
// browser-like headers and must not retry.
type CatalogClient interface {
	Search(ctx context.Context, query string, store StoreContext) (*Page, error)
	ProductDetail(ctx context.Context, productID string, store StoreContext) (*Page, error)
	FetchURL(ctx context.Context, rawURL string, store StoreContext) (*Page, error)
}
