// Package offline keeps a versioned in-memory copy of the board's static
// assets and serves them cache-first.
package offline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fr4nk3nst1ner/jobads/internal/client"
)

// DefaultName is the cache version key. Changing it is the only
// invalidation there is.
const DefaultName = "jobads-cache-v1"

// DefaultFiles are the assets pre-populated on install.
var DefaultFiles = []string{
	"/",
	"/index.html",
	"/style.css",
	"/manifest.json",
}

// Asset is one cached response.
type Asset struct {
	Path        string
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}

// Cache holds assets fetched at install time.
type Cache struct {
	Name  string
	Files []string

	mu     sync.RWMutex
	assets map[string]Asset
}

// New returns an empty cache for the default asset list.
func New() *Cache {
	return &Cache{Name: DefaultName, Files: append([]string(nil), DefaultFiles...)}
}

// Install fetches every listed file from origin. It is all-or-nothing: on
// any failure the cache is left as it was.
func (c *Cache) Install(ctx context.Context, httpClient *http.Client, origin string) error {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient(client.Options{})
	}
	origin = strings.TrimRight(origin, "/")

	fetched := make(map[string]Asset, len(c.Files))
	for _, path := range c.Files {
		asset, err := fetchAsset(ctx, httpClient, origin, path)
		if err != nil {
			return fmt.Errorf("failed to install %s: %w", c.Name, err)
		}
		fetched[path] = asset
	}

	c.mu.Lock()
	c.assets = fetched
	c.mu.Unlock()
	return nil
}

func fetchAsset(ctx context.Context, httpClient *http.Client, origin, path string) (Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+path, nil)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to create request for %s: %v", path, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to fetch %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Asset{}, fmt.Errorf("received non-200 status code for %s: %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to read %s: %v", path, err)
	}

	return Asset{
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		FetchedAt:   time.Now(),
	}, nil
}

// Match returns the cached asset for path.
func (c *Cache) Match(path string) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.assets[path]
	return a, ok
}

// Assets lists cached assets sorted by path.
func (c *Cache) Assets() []Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Asset, 0, len(c.assets))
	for _, a := range c.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// RoundTripper answers cached GET requests from memory and sends
// everything else to next.
func (c *Cache) RoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &cacheFirst{cache: c, next: next}
}

type cacheFirst struct {
	cache *Cache
	next  http.RoundTripper
}

func (t *cacheFirst) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodGet {
		if asset, ok := t.cache.Match(req.URL.Path); ok {
			return asset.response(req), nil
		}
	}
	return t.next.RoundTrip(req)
}

func (a Asset) response(req *http.Request) *http.Response {
	header := http.Header{}
	if a.ContentType != "" {
		header.Set("Content-Type", a.ContentType)
	}
	header.Set("X-Cache", "HIT")
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(a.Body)),
		ContentLength: int64(len(a.Body)),
		Request:       req,
	}
}
