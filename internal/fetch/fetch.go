package fetch

import (
	"context"
	"time"

	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	UserAgent = "BashTech-GPACalc-Crawler/1.0"
	Timeout   = 20 * time.Second
)

// Fetcher retrieves page bodies over HTTP
type Fetcher struct {
	client *resty.Client
	cache  *Cache
}

// New creates a Fetcher. A zero timeout or empty userAgent falls back to the defaults.
func New(userAgent string, timeout time.Duration) *Fetcher {
	if userAgent == "" {
		userAgent = UserAgent
	}
	if timeout <= 0 {
		timeout = Timeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &Fetcher{client: client}
}

// WithCache makes the Fetcher reuse successful responses held in c
func (f *Fetcher) WithCache(c *Cache) *Fetcher {
	f.cache = c
	return f
}

// Fetch returns the body of url, or false if the page could not be retrieved
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, bool) {
	if f.cache != nil {
		if body, ok := f.cache.Get(url); ok {
			logger.IncrCounter("fetch.cache_hit")
			return body, true
		}
	}

	start := time.Now()
	defer func() {
		logger.RecordTiming("fetch", time.Since(start))
	}()

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		logger.IncrCounter("fetch.failed")
		logger.Debug("fetch failed", logger.Fields{"url": url, "error": err.Error()})
		return "", false
	}

	if !resp.IsSuccess() {
		logger.IncrCounter("fetch.failed")
		logger.Debug("fetch returned non-success status", logger.Fields{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return "", false
	}

	logger.IncrCounter("fetch.ok")
	body := resp.String()
	if f.cache != nil {
		f.cache.Set(url, body)
	}
	return body, true
}
