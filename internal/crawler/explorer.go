package crawler

import (
	"context"
	"net/url"
	"strings"

	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/bashtech/gpacalc-crawler/internal/scraper"
)

// Fetcher retrieves a page body, reporting false when the page is unavailable
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, bool)
}

// Explorer walks a site breadth-first looking for a grading table
type Explorer struct {
	fetcher  Fetcher
	maxPages int
	keywords []string
}

// NewExplorer creates an Explorer that visits at most maxPages distinct URLs per
// homepage and follows links mentioning any of keywords.
func NewExplorer(f Fetcher, maxPages int, keywords []string) *Explorer {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return &Explorer{fetcher: f, maxPages: maxPages, keywords: lowered}
}

// Explore returns the first grading table found starting from homepage
func (e *Explorer) Explore(ctx context.Context, homepage string) (scraper.Match, bool) {
	origin := originOf(homepage)
	queue := []string{homepage}
	visited := make(map[string]bool, e.maxPages)

	for len(queue) > 0 && len(visited) < e.maxPages {
		if ctx.Err() != nil {
			return scraper.Match{}, false
		}

		next := queue[0]
		queue = queue[1:]
		if visited[next] {
			continue
		}
		visited[next] = true

		body, ok := e.fetcher.Fetch(ctx, next)
		if !ok {
			continue
		}
		logger.IncrCounter("crawl.pages")

		page, err := scraper.ParsePage(strings.NewReader(body), origin)
		if err != nil {
			continue
		}

		if page.Found {
			logger.IncrCounter("crawl.tables_matched")
			logger.Debug("grading table found", logger.Fields{
				"homepage": homepage,
				"page":     next,
				"scale":    page.Match.Scale,
				"grades":   len(page.Match.Grades),
			})
			return page.Match, true
		}

		for _, link := range page.Links {
			if e.follows(link) {
				queue = append(queue, link.URL)
			}
		}
	}

	return scraper.Match{}, false
}

// follows reports whether the anchor text or href mentions a keyword
func (e *Explorer) follows(link scraper.Link) bool {
	text := strings.ToLower(link.Text)
	href := strings.ToLower(link.Href)
	for _, k := range e.keywords {
		if strings.Contains(text, k) || strings.Contains(href, k) {
			return true
		}
	}
	return false
}

// originOf returns scheme://host of raw, or raw itself if it has neither
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host
}
