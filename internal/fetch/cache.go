package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bashtech/gpacalc-crawler/internal/logger"
)

// DefaultCacheTTL bounds how long a fetched page is reused within a run
const DefaultCacheTTL = time.Hour

// Cache holds page bodies by URL with a TTL. It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	pages    map[string]string
	cachedAt map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewCache creates an empty cache; a non-positive ttl uses DefaultCacheTTL
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		pages:    make(map[string]string),
		cachedAt: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the cached body for url if present and not expired
func (c *Cache) Get(url string) (string, bool) {
	key := cacheKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	body, exists := c.pages[key]
	if !exists {
		return "", false
	}

	cachedTime, hasTime := c.cachedAt[key]
	if !hasTime || c.now().Sub(cachedTime) > c.ttl {
		delete(c.pages, key)
		delete(c.cachedAt, key)
		return "", false
	}

	return body, true
}

// Set stores the body fetched for url
func (c *Cache) Set(url, body string) {
	key := cacheKey(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[key] = body
	c.cachedAt[key] = c.now()
}

// CleanExpired removes expired entries and returns how many were dropped
func (c *Cache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := c.now()
	for key, cachedTime := range c.cachedAt {
		if now.Sub(cachedTime) > c.ttl {
			delete(c.pages, key)
			delete(c.cachedAt, key)
			removed++
		}
	}
	return removed
}

// Sweep calls CleanExpired every interval (the TTL if interval is not positive)
// until ctx is done. A long world crawl
// would otherwise keep every page it ever fetched.
func (c *Cache) Sweep(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = c.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := c.CleanExpired(); removed > 0 {
				logger.Debug("expired pages dropped", logger.Fields{"removed": removed})
			}
		}
	}
}

// Size returns the number of cached entries
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}

// cacheKey drops the fragment, which never reaches the server
func cacheKey(url string) string {
	url = strings.TrimSpace(url)
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	return url
}
