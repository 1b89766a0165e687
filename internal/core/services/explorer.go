package services

import (
	"strings"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Explore is the explorer view-model: a pure function of the catalog and a
// filter state. Adapters call it on every filter change instead of keeping
// derived results of their own.
func Explore(catalog driving.CatalogService, filters domain.ExplorerFilters) domain.ExplorerProjection {
	filters = NormaliseFilters(filters)
	results := catalog.Search(filters.Term, filters.Category, filters.Provider)
	if filters.Popular {
		results = intersect(results, catalog.FilterPopular())
	}
	if filters.FreeTier {
		results = intersect(results, catalog.FilterFreeTier())
	}
	return domain.ExplorerProjection{
		Filters: filters,
		Results: results,
		Groups:  catalog.GroupByCategory(results),
		Count:   len(results),
	}
}

// NormaliseFilters maps user input onto the values Search expects.
// Blank category or provider become domain.Wildcard and known values are
// matched case-insensitively. Unknown values pass through unchanged so
// they select nothing.
func NormaliseFilters(f domain.ExplorerFilters) domain.ExplorerFilters {
	f.Category = normaliseFacet(f.Category, func(s string) string {
		return string(domain.ParseCategory(s))
	})
	f.Provider = normaliseFacet(f.Provider, func(s string) string {
		return string(domain.ParseProvider(s))
	})
	return f
}

func normaliseFacet(v string, parse func(string) string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, domain.Wildcard) {
		return domain.Wildcard
	}
	return parse(v)
}

// intersect keeps the records of results whose id is also in keep.
func intersect(results, keep []domain.ServiceRecord) []domain.ServiceRecord {
	ids := make(map[string]struct{}, len(keep))
	for i := range keep {
		ids[keep[i].ID] = struct{}{}
	}
	out := make([]domain.ServiceRecord, 0, len(results))
	for i := range results {
		if _, ok := ids[results[i].ID]; ok {
			out = append(out, results[i])
		}
	}
	return out
}
