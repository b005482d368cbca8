package crawler

import (
	"context"
	"sort"
	"strings"

	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/bashtech/gpacalc-crawler/internal/scraper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Runner drives a whole crawl: list page to entities to explored systems
type Runner struct {
	fetcher  Fetcher
	explorer *Explorer

	countryLimit int
	worldLimit   int64
}

// NewRunner creates a Runner. countryLimit caps concurrent explorations in a
// single-country crawl, worldLimit in a world crawl.
func NewRunner(f Fetcher, e *Explorer, countryLimit, worldLimit int) *Runner {
	if countryLimit <= 0 {
		countryLimit = 1
	}
	if worldLimit <= 0 {
		worldLimit = 1
	}
	return &Runner{
		fetcher:      f,
		explorer:     e,
		countryLimit: countryLimit,
		worldLimit:   int64(worldLimit),
	}
}

// CrawlCountry explores every institution on listURL and returns the systems found,
// ordered by institution name
func (r *Runner) CrawlCountry(ctx context.Context, listURL, country, region string) []grading.GradingSystem {
	entities := r.entities(ctx, listURL)
	if len(entities) == 0 {
		return nil
	}

	logger.Info("crawling institutions", logger.Fields{
		"country":  country,
		"entities": len(entities),
	})
	logger.AddCounter("crawl.entities", int64(len(entities)))

	results := make([]*grading.GradingSystem, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.countryLimit)
	for i, ent := range entities {
		if ent.DetailURL == "" {
			continue
		}
		g.Go(func() error {
			match, ok := r.explorer.Explore(gctx, ent.DetailURL)
			if !ok {
				return nil
			}
			logMatch(ent, match)
			sys := grading.NewSystem(ent.Name, country, region, match.Scale, match.Grades)
			results[i] = &sys
			return nil
		})
	}
	_ = g.Wait()

	systems := collect(results)
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Name < systems[j].Name
	})
	return systems
}

// CrawlWorld explores the institutions of every country list linked from indexURL.
// Countries run concurrently; explorations across all countries share one admission gate.
// Systems are returned ordered by id.
func (r *Runner) CrawlWorld(ctx context.Context, indexURL string) []grading.GradingSystem {
	body, ok := r.fetcher.Fetch(ctx, indexURL)
	if !ok {
		logger.Warn("world index unavailable", logger.Fields{"url": indexURL})
		return nil
	}

	lists, err := scraper.ExtractCountryLists(strings.NewReader(body), originOf(indexURL))
	if err != nil {
		logger.Warn("parsing world index failed", logger.Fields{"url": indexURL, "error": err.Error()})
		return nil
	}
	logger.Info("crawling countries", logger.Fields{"countries": len(lists)})
	logger.SetGauge("crawl.countries", float64(len(lists)))

	gate := semaphore.NewWeighted(r.worldLimit)
	perCountry := make([][]grading.GradingSystem, len(lists))

	var g errgroup.Group
	for i, list := range lists {
		g.Go(func() error {
			perCountry[i] = r.crawlCountryList(ctx, gate, list)
			return nil
		})
	}
	_ = g.Wait()

	var systems []grading.GradingSystem
	for _, found := range perCountry {
		systems = append(systems, found...)
	}
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].ID < systems[j].ID
	})
	return systems
}

// crawlCountryList explores one country's institutions in list order, holding a gate
// slot only while an exploration is in flight
func (r *Runner) crawlCountryList(ctx context.Context, gate *semaphore.Weighted, list scraper.CountryList) []grading.GradingSystem {
	entities := r.entities(ctx, list.URL)
	logger.AddCounter("crawl.entities", int64(len(entities)))

	var systems []grading.GradingSystem
	for _, ent := range entities {
		if ent.DetailURL == "" {
			continue
		}
		if err := gate.Acquire(ctx, 1); err != nil {
			return systems
		}
		match, ok := r.explorer.Explore(ctx, ent.DetailURL)
		gate.Release(1)

		if ok {
			logMatch(ent, match)
			systems = append(systems, grading.NewWorldSystem(ent.Name, list.Country, match.Scale, match.Grades))
		}
	}

	if len(systems) > 0 {
		logger.Debug("country crawled", logger.Fields{"country": list.Country, "systems": len(systems)})
	}
	return systems
}

// entities fetches a list page and extracts its institutions; any failure yields none
func (r *Runner) entities(ctx context.Context, listURL string) []grading.Entity {
	body, ok := r.fetcher.Fetch(ctx, listURL)
	if !ok {
		logger.Warn("list page unavailable", logger.Fields{"url": listURL})
		return nil
	}

	entities, err := scraper.ExtractEntities(strings.NewReader(body), originOf(listURL))
	if err != nil {
		logger.Warn("parsing list page failed", logger.Fields{"url": listURL, "error": err.Error()})
		return nil
	}
	return entities
}

func logMatch(ent grading.Entity, match scraper.Match) {
	fields := logger.Fields{"institution": ent.Name, "scale": match.Scale}
	if ent.Kind != "" {
		fields["section"] = ent.Kind
	}
	logger.Debug("institution matched", fields)
}

func collect(results []*grading.GradingSystem) []grading.GradingSystem {
	systems := make([]grading.GradingSystem, 0, len(results))
	for _, sys := range results {
		if sys != nil {
			systems = append(systems, *sys)
		}
	}
	return systems
}
