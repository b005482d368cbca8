// Package fetch retrieves pages for the crawler.
//
// A Fetcher issues a single GET with a bounded timeout and an identifying User-Agent.
// Every failure (transport error, timeout, non-2xx status) is reported as absence rather
// than an error, so one unreachable site never aborts a crawl. There are no retries.
package fetch
