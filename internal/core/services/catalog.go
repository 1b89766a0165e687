package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Ensure Catalog implements the interface.
var _ driving.CatalogService = (*Catalog)(nil)

// Catalog is the immutable query layer over a loaded set of service records.
// It is safe for concurrent use; no method mutates the catalog.
type Catalog struct {
	records []domain.ServiceRecord
	index   map[string]int
}

// NewCatalog validates records and takes a private copy of them.
// Duplicate ids and values outside the provider or category enumerations
// are rejected with domain.ErrInvalidCatalog.
func NewCatalog(records []domain.ServiceRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	c := &Catalog{
		records: make([]domain.ServiceRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %q has no id", domain.ErrInvalidCatalog, r.Name)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidCatalog, r.ID)
		}
		if !r.Provider.IsValid() {
			return nil, fmt.Errorf("%w: %s: unknown provider %q", domain.ErrInvalidCatalog, r.ID, r.Provider)
		}
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("%w: %s: unknown category %q", domain.ErrInvalidCatalog, r.ID, r.Category)
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r.Clone())
	}
	return c, nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every record in catalog order.
func (c *Catalog) All() []domain.ServiceRecord {
	return c.filter(func(domain.ServiceRecord) bool { return true })
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (*domain.ServiceRecord, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("service %q: %w", id, domain.ErrNotFound)
	}
	r := c.records[i].Clone()
	return &r, nil
}

// Categories returns the categories present in the catalog in enumeration order.
func (c *Catalog) Categories() []domain.Category {
	present := make(map[domain.Category]bool)
	for _, r := range c.records {
		present[r.Category] = true
	}
	out := make([]domain.Category, 0, len(present))
	for _, cat := range domain.AllCategories() {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Providers returns the providers present in the catalog in enumeration order.
func (c *Catalog) Providers() []domain.Provider {
	present := make(map[domain.Provider]bool)
	for _, r := range c.records {
		present[r.Provider] = true
	}
	out := make([]domain.Provider, 0, len(present))
	for _, p := range domain.AllProviders() {
		if present[p] {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns the records whose category equals category.
func (c *Catalog) FilterByCategory(category domain.Category) []domain.ServiceRecord {
	return c.filter(func(r domain.ServiceRecord) bool { return r.Category == category })
}

// FilterByProvider returns the records whose provider equals provider.
func (c *Catalog) FilterByProvider(provider domain.Provider) []domain.ServiceRecord {
	return c.filter(func(r domain.ServiceRecord) bool { return r.Provider == provider })
}

// FilterPopular returns the records flagged popular.
func (c *Catalog) FilterPopular() []domain.ServiceRecord {
	return c.filter(func(r domain.ServiceRecord) bool { return r.Popular })
}

// FilterFreeTier returns the records with a free tier.
func (c *Catalog) FilterFreeTier() []domain.ServiceRecord {
	return c.filter(func(r domain.ServiceRecord) bool { return r.FreeTier })
}

// Search returns the records whose name or description contains term,
// ignoring case, and whose category and provider match. An empty term
// matches every record; domain.Wildcard matches any category or provider.
func (c *Catalog) Search(term, category, provider string) []domain.ServiceRecord {
	needle := strings.ToLower(term)
	return c.filter(func(r domain.ServiceRecord) bool {
		if category != domain.Wildcard && string(r.Category) != category {
			return false
		}
		if provider != domain.Wildcard && string(r.Provider) != provider {
			return false
		}
		return strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle)
	})
}

// GroupByCategory partitions records by category. Groups appear in the order
// their category is first seen and keep the input order within each group.
func (c *Catalog) GroupByCategory(records []domain.ServiceRecord) []domain.CategoryGroup {
	groups := []domain.CategoryGroup{}
	pos := make(map[domain.Category]int)
	for _, r := range records {
		i, ok := pos[r.Category]
		if !ok {
			i = len(groups)
			pos[r.Category] = i
			groups = append(groups, domain.CategoryGroup{Category: r.Category})
		}
		groups[i].Services = append(groups[i].Services, r)
	}
	return groups
}

// AlignByProvider splits records per provider and zips the lists by position.
// The row count equals the longest per-provider list; shorter lists leave
// nil slots. Rows pair services by position only, not by equivalence.
func (c *Catalog) AlignByProvider(records []domain.ServiceRecord) []domain.ComparisonRow {
	byProvider := make(map[domain.Provider][]domain.ServiceRecord, 3)
	longest := 0
	for _, r := range records {
		if !r.Provider.IsValid() {
			continue
		}
		byProvider[r.Provider] = append(byProvider[r.Provider], r)
		if n := len(byProvider[r.Provider]); n > longest {
			longest = n
		}
	}

	at := func(p domain.Provider, i int) *domain.ServiceRecord {
		list := byProvider[p]
		if i >= len(list) {
			return nil
		}
		r := list[i]
		return &r
	}

	rows := make([]domain.ComparisonRow, longest)
	for i := range rows {
		rows[i] = domain.ComparisonRow{
			AWS:   at(domain.ProviderAWS, i),
			Azure: at(domain.ProviderAzure, i),
			GCP:   at(domain.ProviderGCP, i),
		}
	}
	return rows
}

// Explore projects the catalog through an explorer filter state.
func (c *Catalog) Explore(filters domain.ExplorerFilters) domain.ExplorerProjection {
	return Explore(c, filters)
}

// Stats returns counts for the dashboard.
func (c *Catalog) Stats() domain.CatalogStats {
	stats := domain.CatalogStats{
		Total:    len(c.records),
		Popular:  len(c.FilterPopular()),
		FreeTier: len(c.FilterFreeTier()),
	}

	regions := make(map[string]struct{})
	for _, r := range c.records {
		for _, code := range r.Regions {
			regions[code] = struct{}{}
		}
	}
	stats.TotalRegions = len(regions)

	for _, p := range domain.AllProviders() {
		stats.ByProvider = append(stats.ByProvider, domain.ProviderCount{
			Provider: p,
			Count:    len(c.FilterByProvider(p)),
		})
	}
	for _, cat := range domain.AllCategories() {
		stats.ByCategory = append(stats.ByCategory, domain.CategoryCount{
			Category: cat,
			Count:    len(c.FilterByCategory(cat)),
		})
	}
	return stats
}

// filter returns copies of the matching records in catalog order.
// The result is never nil.
func (c *Catalog) filter(keep func(domain.ServiceRecord) bool) []domain.ServiceRecord {
	out := []domain.ServiceRecord{}
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}
