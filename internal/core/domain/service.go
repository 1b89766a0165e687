package domain

// ServiceRecord describes a single cloud service in the catalog.
// Records are immutable once the catalog has been loaded.
type ServiceRecord struct {
	ID               string   `json:"id" toml:"id" yaml:"id"`
	Name             string   `json:"name" toml:"name" yaml:"name"`
	Provider         Provider `json:"provider" toml:"provider" yaml:"provider"`
	Category         Category `json:"category" toml:"category" yaml:"category"`
	Description      string   `json:"description" toml:"description" yaml:"description"`
	Pricing          string   `json:"pricing" toml:"pricing" yaml:"pricing"`
	Features         []string `json:"features" toml:"features" yaml:"features"`
	Regions          []string `json:"regions" toml:"regions" yaml:"regions"`
	Tags             []string `json:"tags" toml:"tags" yaml:"tags"`
	FreeTier         bool     `json:"freeTier" toml:"free_tier" yaml:"freeTier"`
	Popular          bool     `json:"popular" toml:"popular" yaml:"popular"`
	DocumentationURL string   `json:"documentationUrl,omitempty" toml:"documentation_url,omitempty" yaml:"documentationUrl,omitempty"`
}

// TopFeatures returns at most n features in their original order.
func (r ServiceRecord) TopFeatures(n int) []string {
	if n < 0 || n >= len(r.Features) {
		return r.Features
	}
	return r.Features[:n]
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices.
func (r ServiceRecord) Clone() ServiceRecord {
	r.Features = cloneStrings(r.Features)
	r.Regions = cloneStrings(r.Regions)
	r.Tags = cloneStrings(r.Tags)
	return r
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CategoryGroup is one entry of an insertion-ordered category grouping.
type CategoryGroup struct {
	Category Category
	Services []ServiceRecord
}

// ComparisonRow pairs services of the three providers by list position.
// A nil slot means the provider has fewer services in the compared set.
type ComparisonRow struct {
	AWS   *ServiceRecord
	Azure *ServiceRecord
	GCP   *ServiceRecord
}

// Slot returns the row entry for the given provider.
func (r ComparisonRow) Slot(p Provider) *ServiceRecord {
	switch p {
	case ProviderAWS:
		return r.AWS
	case ProviderAzure:
		return r.Azure
	case ProviderGCP:
		return r.GCP
	default:
		return nil
	}
}

// Complete returns true if all three slots are populated.
func (r ComparisonRow) Complete() bool {
	return r.AWS != nil && r.Azure != nil && r.GCP != nil
}
