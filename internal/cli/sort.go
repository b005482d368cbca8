package cli

import (
	"sort"
	"strings"

	"github.com/bashtech/gpacalc-crawler/internal/grading"
)

// SortOrder represents the available sorting options for the run summary
type SortOrder string

const (
	SortByID      SortOrder = "id"
	SortByName    SortOrder = "name"
	SortByCountry SortOrder = "country"
	SortByScale   SortOrder = "scale"
)

func validSortOrder(s SortOrder) bool {
	switch s {
	case SortByID, SortByName, SortByCountry, SortByScale:
		return true
	}
	return false
}

// sortSystems sorts systems for display based on the specified sort order
func sortSystems(systems []grading.GradingSystem, order SortOrder) {
	switch order {
	case SortByID:
		sort.SliceStable(systems, func(i, j int) bool {
			return systems[i].ID < systems[j].ID
		})
	case SortByName:
		sort.SliceStable(systems, func(i, j int) bool {
			return compareByName(systems[i], systems[j])
		})
	case SortByCountry:
		sort.SliceStable(systems, func(i, j int) bool {
			if systems[i].Country != systems[j].Country {
				return systems[i].Country < systems[j].Country
			}
			// Same country, fall back to name
			return compareByName(systems[i], systems[j])
		})
	case SortByScale:
		sort.SliceStable(systems, func(i, j int) bool {
			if systems[i].Scale != systems[j].Scale {
				return systems[i].Scale > systems[j].Scale
			}
			return compareByName(systems[i], systems[j])
		})
	}
}

// compareByName orders case-insensitively by name, then by id
func compareByName(a, b grading.GradingSystem) bool {
	na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if na != nb {
		return na < nb
	}
	return a.ID < b.ID
}
