package domain

// ProviderCount is the number of services offered by a provider.
type ProviderCount struct {
	Provider Provider `json:"provider"`
	Count    int      `json:"count"`
}

// CategoryCount is the number of services in a category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// CatalogStats are counts derived from the catalog for the dashboard.
type CatalogStats struct {
	Total        int             `json:"total"`
	Popular      int             `json:"popular"`
	FreeTier     int             `json:"free_tier"`
	TotalRegions int             `json:"total_regions"`
	ByProvider   []ProviderCount `json:"by_provider"`
	ByCategory   []CategoryCount `json:"by_category"`
}
