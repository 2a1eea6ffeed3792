// Package geo resolves network addresses to location attributes using an
// ip-api.com compatible HTTP service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/folio/backend/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	lookupTimeout = 5 * time.Second

	// cacheSize bounds the memoized lookups. The upstream free tier
	// enforces a request-rate ceiling, so repeated visitors must not cost
	// repeated lookups. Staleness of cached geo-data is acceptable.
	cacheSize = 100
)

// Client queries an IP geolocation service and memoizes results per address
// in a bounded LRU cache. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, model.GeoInfo]
}

// NewClient creates a Client against the given base URL
// (e.g. "http://ip-api.com").
func NewClient(baseURL string) (*Client, error) {
	cache, err := lru.New[string, model.GeoInfo](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("geo: create cache: %w", err)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
		cache:      cache,
	}, nil
}

// lookupResponse mirrors the ip-api.com JSON payload.
type lookupResponse struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	RegionName  string `json:"regionName"`
	City        string `json:"city"`
	ISP         string `json:"isp"`
	Org         string `json:"org"`
	AS          string `json:"as"`
	Query       string `json:"query"`
}

// Lookup returns geolocation attributes for addr. Results are memoized for
// the process lifetime. Any failure (network error, timeout, non-success
// status, malformed response) yields the Unknown fallback with addr
// preserved in the ip field; Lookup never returns an error.
func (c *Client) Lookup(ctx context.Context, addr string) model.GeoInfo {
	if info, ok := c.cache.Get(addr); ok {
		return info
	}

	info := c.fetch(ctx, addr)
	c.cache.Add(addr, info)
	return info
}

func (c *Client) fetch(ctx context.Context, addr string) model.GeoInfo {
	url := fmt.Sprintf("%s/json/%s?fields=status,country,countryCode,regionName,city,isp,org,as,query", c.baseURL, addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("geo lookup failed", "addr", addr, "error", err)
		return model.UnknownGeoInfo(addr)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("geo lookup failed", "addr", addr, "error", err)
		return model.UnknownGeoInfo(addr)
	}
	defer resp.Body.Close()

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("geo lookup returned malformed response", "addr", addr, "error", err)
		return model.UnknownGeoInfo(addr)
	}
	if body.Status != "success" {
		slog.Warn("geo lookup returned non-success status", "addr", addr, "status", body.Status)
		return model.UnknownGeoInfo(addr)
	}

	info := model.GeoInfo{
		IP:          orDefault(body.Query, addr),
		Country:     orDefault(body.Country, "Unknown"),
		CountryCode: orDefault(body.CountryCode, "??"),
		Region:      orDefault(body.RegionName, "Unknown"),
		City:        orDefault(body.City, "Unknown"),
		ISP:         orDefault(body.ISP, "Unknown"),
		Org:         orDefault(body.Org, "Unknown"),
		AS:          orDefault(body.AS, "Unknown"),
	}
	return info
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
