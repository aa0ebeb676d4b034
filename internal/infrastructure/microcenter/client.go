package microcenter

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/partscout/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// RetailerDomain is the registrable domain pasted product links must belong to
	RetailerDomain = "microcenter.com"

	DefaultBaseURL   = "https://www.microcenter.com"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

	searchPath = "/search/search_results.aspx"
)

// ClientOptions configures the retailer client
type ClientOptions struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client fetches search and product pages from the retailer. It never retries:
// callers re-run a lookup when they want another attempt.
type Client struct {
	http        *resty.Client
	baseURL     *url.URL
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a retailer client with a browser-like header set
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	if opts.Burst <= 0 {
		opts.Burst = 3
	}

	baseURL, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(baseURL.String())
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeaders(map[string]string{
		"User-Agent":      opts.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         baseURL.String() + "/",
	})
	client.SetTimeout(opts.Timeout)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(
		baseURL.Hostname(),
		RetailerDomain,
		"www."+RetailerDomain,
	))

	return &Client{
		http:        client,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
	}, nil
}

// SetDebug enables request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Search fetches the catalog search results page for query
func (c *Client) Search(ctx context.Context, query string, store domain.StoreContext) (*domain.Page, error) {
	return c.get(ctx, searchPath, map[string]string{
		"Ntt":     query,
		"storeid": store.StoreID,
	})
}

// ProductDetail fetches the detail page of a canonical product id
func (c *Client) ProductDetail(ctx context.Context, productID string, store domain.StoreContext) (*domain.Page, error) {
	return c.get(ctx, "/product/"+url.PathEscape(productID)+"/", map[string]string{
		"storeid": store.StoreID,
	})
}

// FetchURL fetches a product URL pasted by the user, pinning it to the store.
// Only the path and query are taken from rawURL; the request always goes to
// the configured retailer host. Links on any other host fail with
// domain.ErrForeignHost before a request is made.
func (c *Client) FetchURL(ctx context.Context, rawURL string, store domain.StoreContext) (*domain.Page, error) {
	target, err := normalizeProductURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if !c.isRetailerHost(target.Hostname()) {
		log.Printf("[FETCH] Refusing link on foreign host %q", target.Hostname())
		return nil, fmt.Errorf("%w: %s", domain.ErrForeignHost, target.Hostname())
	}

	query := map[string]string{}
	if target.Query().Get("storeid") == "" && store.StoreID != "" {
		query["storeid"] = store.StoreID
	}

	path := target.EscapedPath()
	if path == "" {
		path = "/"
	}
	if target.RawQuery != "" {
		path += "?" + target.RawQuery
	}
	return c.get(ctx, path, query)
}

// isRetailerHost accepts the configured host, the retailer domain and its subdomains
func (c *Client) isRetailerHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}
	if host == strings.ToLower(c.baseURL.Hostname()) {
		return true
	}
	return host == RetailerDomain || strings.HasSuffix(host, "."+RetailerDomain)
}

func normalizeProductURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q has no host", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url %q is not http(s)", rawURL)
	}
	return u, nil
}

// get issues one GET. A blocked status still returns the page so callers can
// inspect its markers.
func (c *Client) get(ctx context.Context, path string, query map[string]string) (*domain.Page, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := make(map[string]string, len(query))
	for k, v := range query {
		if v != "" {
			params[k] = v
		}
	}

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		log.Printf("[FETCH] Request error for %s: %v", path, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	page := &domain.Page{
		URL:        res.Request.URL,
		StatusCode: res.StatusCode(),
		Body:       res.String(),
	}
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		page.URL = res.RawResponse.Request.URL.String()
	}

	if c.debug {
		log.Printf("[FETCH] GET %s -> %d (%d bytes, %s)", page.URL, page.StatusCode, len(page.Body), time.Since(start))
	}

	switch res.StatusCode() {
	case http.StatusForbidden, http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return page, fmt.Errorf("%w: status %d", domain.ErrBlocked, res.StatusCode())
	}
	if !res.IsSuccess() {
		return page, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, res.StatusCode())
	}
	if strings.TrimSpace(page.Body) == "" {
		return page, domain.ErrEmptyResponse
	}

	return page, nil
}
