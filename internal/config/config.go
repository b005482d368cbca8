package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/bashtech/gpacalc-crawler/internal/catalog"
	"github.com/bashtech/gpacalc-crawler/internal/fetch"
	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/titanous/json5"
)

const (
	DefaultListURL       = "https://en.wikipedia.org/wiki/List_of_universities_in_India"
	DefaultWorldIndexURL = "https://en.wikipedia.org/wiki/Lists_of_universities_and_colleges_by_country"
	DefaultRegion        = "South Asia"

	DefaultMaxPages           = 5
	DefaultCountryConcurrency = 10
	DefaultWorldConcurrency   = 8
)

// DefaultKeywords mark links worth following from a homepage
var DefaultKeywords = []string{
	"academic", "regulation", "ordinance", "examination",
	"grading", "evaluation", "credit", "curriculum",
}

// Config controls a crawl run
type Config struct {
	UserAgent      string `json:"userAgent"`
	TimeoutSeconds int    `json:"timeoutSeconds"`

	// CacheTTLSeconds bounds reuse of fetched pages within a run
	CacheTTLSeconds int `json:"cacheTtlSeconds"`

	// MaxPages is the per-homepage page budget
	MaxPages           int      `json:"maxPages"`
	CountryConcurrency int      `json:"countryConcurrency"`
	WorldConcurrency   int      `json:"worldConcurrency"`
	Keywords           []string `json:"keywords"`

	// Country is the country crawled by default and the only one validated before merge
	Country string `json:"country"`
	Region  string `json:"region"`

	ListURL       string `json:"listUrl"`
	WorldIndexURL string `json:"worldIndexUrl"`
	CatalogPath   string `json:"catalogPath"`
}

// Default returns the built-in configuration
func Default() Config {
	keywords := make([]string, len(DefaultKeywords))
	copy(keywords, DefaultKeywords)

	return Config{
		UserAgent:          fetch.UserAgent,
		TimeoutSeconds:     int(fetch.Timeout / time.Second),
		CacheTTLSeconds:    int(fetch.DefaultCacheTTL / time.Second),
		MaxPages:           DefaultMaxPages,
		CountryConcurrency: DefaultCountryConcurrency,
		WorldConcurrency:   DefaultWorldConcurrency,
		Keywords:           keywords,
		Country:            "India",
		Region:             DefaultRegion,
		ListURL:            DefaultListURL,
		WorldIndexURL:      DefaultWorldIndexURL,
		CatalogPath:        catalog.DefaultPath,
	}
}

// Timeout returns the per-request timeout
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long fetched pages are reused
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Validate checks that numeric limits are usable
func (c Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeoutSeconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("maxPages must be positive, got %d", c.MaxPages)
	}
	if c.CountryConcurrency <= 0 || c.WorldConcurrency <= 0 {
		return fmt.Errorf("concurrency limits must be positive")
	}
	if strings.TrimSpace(c.ListURL) == "" || strings.TrimSpace(c.WorldIndexURL) == "" {
		return fmt.Errorf("listUrl and worldIndexUrl are required")
	}
	return nil
}

// Load returns the defaults overlaid with the json5 file at path and then with
// <name>.local.<ext> beside it. Fields missing from a file keep their previous value.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	found := false
	for _, name := range []string{path, localPath(path)} {
		override, ok, err := readFile(name)
		if err != nil {
			return cfg, err
		}
		if !ok {
			continue
		}
		if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("merging %s: %w", name, err)
		}
		if name != path {
			logger.Info("merging config with local overrides", logger.Fields{"local": name})
		}
		found = true
	}

	if !found {
		return cfg, fmt.Errorf("config not found at %s", path)
	}

	return cfg, cfg.Validate()
}

func readFile(name string) (Config, bool, error) {
	var out Config

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return out, false, nil
		}
		return out, false, fmt.Errorf("reading config: %w", err)
	}
	if len(data) == 0 {
		return out, false, nil
	}

	if err := json5.Unmarshal(data, &out); err != nil {
		return out, false, fmt.Errorf("parsing config %s: %w", name, err)
	}
	return out, true, nil
}

// localPath turns "dir/crawler.json5" into "dir/crawler.local.json5"
func localPath(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, prefix+".local"+ext)
}
