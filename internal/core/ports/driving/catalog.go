package driving

import (
	"context"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// CatalogService is the read-only query layer over the loaded catalog.
// Query methods never fail: values outside the provider or category
// enumerations produce empty results.
type CatalogService interface {
	// All returns every record in catalog order.
	All() []domain.ServiceRecord

	// Get returns the record with the given id.
	// Returns domain.ErrNotFound for an unknown id.
	Get(id string) (*domain.ServiceRecord, error)

	// Categories returns the categories present in the catalog in
	// enumeration order.
	Categories() []domain.Category

	// Providers returns the providers present in the catalog in
	// enumeration order.
	Providers() []domain.Provider

	// FilterByCategory returns the records whose category equals category.
	FilterByCategory(category domain.Category) []domain.ServiceRecord

	// FilterByProvider returns the records whose provider equals provider.
	FilterByProvider(provider domain.Provider) []domain.ServiceRecord

	// FilterPopular returns the records flagged popular.
	FilterPopular() []domain.ServiceRecord

	// FilterFreeTier returns the records with a free tier.
	FilterFreeTier() []domain.ServiceRecord

	// Search matches term against name and description, case-insensitively.
	// category and provider accept domain.Wildcard.
	Search(term, category, provider string) []domain.ServiceRecord

	// GroupByCategory partitions records by category, ordered by first
	// appearance.
	GroupByCategory(records []domain.ServiceRecord) []domain.CategoryGroup

	// AlignByProvider lays records out in positional rows per provider.
	AlignByProvider(records []domain.ServiceRecord) []domain.ComparisonRow

	// Explore projects the catalog through an explorer filter state.
	Explore(filters domain.ExplorerFilters) domain.ExplorerProjection

	// Stats returns dashboard counts.
	Stats() domain.CatalogStats
}

// ComparisonService builds category comparisons.
type ComparisonService interface {
	// CompareCategory aligns the services of a category by provider.
	CompareCategory(category domain.Category) domain.Comparison

	// SelectedRecords returns the selected records in catalog order.
	SelectedRecords(selection domain.Selection) []domain.ServiceRecord
}

// RegionService exposes the region latency table.
type RegionService interface {
	// Regions returns the regions of provider, or of every provider
	// for domain.Wildcard. An unknown provider yields no entries.
	Regions(provider string) []domain.ProviderRegions

	// Overview summarises the region table.
	Overview() domain.RegionOverview
}

// MigrationPlanner produces canned migration guidance.
type MigrationPlanner interface {
	// Plan validates req and assembles the guidance for it.
	// Returns domain.ErrInvalidInput for invalid requests.
	Plan(req domain.PlanRequest) (*domain.MigrationPlan, error)

	// Strategy returns the strategy for a complexity level.
	Strategy(c domain.Complexity) (domain.MigrationStrategy, error)
}

// CatalogAdmin moves catalogs between files and the local store.
type CatalogAdmin interface {
	// Import validates the catalog file at path and stores it as the
	// current imported catalog.
	Import(ctx context.Context, path string) (*domain.CatalogImport, error)

	// Export writes the loaded catalog to path and returns the record count.
	Export(ctx context.Context, path string) (int, error)

	// History returns past imports, newest first.
	History(ctx context.Context) ([]domain.CatalogImport, error)
}
