package services

import (
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Ensure ComparisonService implements the interface.
var _ driving.ComparisonService = (*ComparisonService)(nil)

// ComparisonService builds side-by-side category comparisons.
type ComparisonService struct {
	catalog driving.CatalogService
}

// NewComparisonService creates a comparison service over catalog.
func NewComparisonService(catalog driving.CatalogService) *ComparisonService {
	return &ComparisonService{catalog: catalog}
}

// CompareCategory aligns the services of category by provider.
func (s *ComparisonService) CompareCategory(category domain.Category) domain.Comparison {
	records := s.catalog.FilterByCategory(category)

	counts := make([]domain.ProviderCount, 0, len(domain.AllProviders()))
	for _, p := range domain.AllProviders() {
		n := 0
		for _, r := range records {
			if r.Provider == p {
				n++
			}
		}
		counts = append(counts, domain.ProviderCount{Provider: p, Count: n})
	}

	return domain.Comparison{
		Category: category,
		Rows:     s.catalog.AlignByProvider(records),
		Counts:   counts,
	}
}

// SelectedRecords returns the selected records in catalog order.
// Ids missing from the catalog are skipped.
func (s *ComparisonService) SelectedRecords(selection domain.Selection) []domain.ServiceRecord {
	out := []domain.ServiceRecord{}
	if selection.Len() == 0 {
		return out
	}
	for _, r := range s.catalog.All() {
		if selection.Contains(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
