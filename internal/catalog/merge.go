package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/bashtech/gpacalc-crawler/internal/logger"
	"github.com/bashtech/gpacalc-crawler/internal/validate"
)

const (
	DefaultVersion = "1.0.0"
	DateLayout     = "2006-01-02"
)

// Merger folds newly discovered systems into an existing catalog
type Merger struct {
	// Country whose systems must pass validation; empty disables validation
	Country string
	// Now supplies the run date; defaults to time.Now
	Now func() time.Time
}

// MergeStats summarizes what a merge changed
type MergeStats struct {
	Pruned   int `json:"pruned"`   // existing entries dropped for failing validation
	Rejected int `json:"rejected"` // new systems dropped for failing validation or a missing id
	Added    int `json:"added"`
	Updated  int `json:"updated"`
}

// NewMerger creates a Merger validating systems of the given country
func NewMerger(country string) *Merger {
	return &Merger{Country: country, Now: time.Now}
}

// Merge returns a new catalog holding existing's systems upserted with systems.
// existing is left untouched.
func (m *Merger) Merge(existing *grading.Catalog, systems []grading.GradingSystem) (*grading.Catalog, MergeStats) {
	var stats MergeStats
	if existing == nil {
		existing = grading.NewCatalog(DefaultVersion)
	}
	merged := existing.Clone()

	order := make([]string, 0, len(merged.Systems)+len(systems))
	byID := make(map[string]grading.GradingSystem, len(merged.Systems)+len(systems))

	upsert := func(sys grading.GradingSystem) bool {
		_, exists := byID[sys.ID]
		if !exists {
			order = append(order, sys.ID)
		}
		byID[sys.ID] = sys
		return exists
	}

	for _, sys := range merged.Systems {
		if m.rejects(sys) {
			stats.Pruned++
			logger.Debug("pruning invalid catalog entry", logger.Fields{"id": sys.ID})
			continue
		}
		upsert(sys)
	}

	for _, sys := range systems {
		if sys.ID == "" || m.rejects(sys) {
			stats.Rejected++
			continue
		}
		if upsert(sys.Clone()) {
			stats.Updated++
		} else {
			stats.Added++
		}
	}

	merged.Systems = make([]grading.GradingSystem, 0, len(order))
	for _, id := range order {
		merged.Systems = append(merged.Systems, byID[id])
	}

	version := existing.Version
	if version == "" {
		version = DefaultVersion
	}
	if bumped, ok := BumpVersion(version); ok {
		merged.Version = bumped
	} else {
		logger.Warn("catalog version not bumped", logger.Fields{"version": version})
		merged.Version = version
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	merged.LastUpdated = now().UTC().Format(DateLayout)

	return merged, stats
}

func (m *Merger) rejects(sys grading.GradingSystem) bool {
	return validate.Constrained(sys, m.Country) && !validate.IsValid(sys)
}

// BumpVersion increments the last dotted segment of version.
// "1.0.3" becomes "1.0.4"; ok is false if that segment is not an integer.
func BumpVersion(version string) (string, bool) {
	parts := strings.Split(version, ".")
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return version, false
	}
	parts[len(parts)-1] = strconv.Itoa(last + 1)
	return strings.Join(parts, "."), true
}
