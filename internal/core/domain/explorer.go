package domain

// ExplorerFilters is the filter state of an explorer view.
// Category and Provider accept Wildcard. Popular and FreeTier, when set,
// keep only records with that flag.
type ExplorerFilters struct {
	Term     string `json:"term"`
	Category string `json:"category"`
	Provider string `json:"provider"`
	Popular  bool   `json:"popular,omitempty"`
	FreeTier bool   `json:"free_tier,omitempty"`
}

// DefaultExplorerFilters matches the whole catalog.
func DefaultExplorerFilters() ExplorerFilters {
	return ExplorerFilters{Category: Wildcard, Provider: Wildcard}
}

// ExplorerProjection is what an explorer displays for a filter state.
type ExplorerProjection struct {
	Filters ExplorerFilters `json:"filters"`
	Results []ServiceRecord `json:"results"`
	Groups  []CategoryGroup `json:"-"`
	Count   int             `json:"count"`
}

// Comparison is the side-by-side view of one category.
type Comparison struct {
	Category Category        `json:"category"`
	Rows     []ComparisonRow `json:"rows"`
	Counts   []ProviderCount `json:"counts"`
}
