package driven

import "github.com/custodia-labs/cloudcompass/internal/core/domain"

// RegionSource provides the static region table.
type RegionSource interface {
	// Regions returns the regions of every provider in provider order.
	Regions() []domain.ProviderRegions
}

// GuidanceSource provides the canned migration guidance tables.
type GuidanceSource interface {
	// Strategy returns the strategy for a complexity level.
	// The boolean is false for an unknown level.
	Strategy(c domain.Complexity) (domain.MigrationStrategy, bool)

	// Advice returns the strengths and considerations of a target provider.
	Advice(p domain.Provider) (domain.ProviderAdvice, bool)

	// Equivalent returns the target-provider service name matching a
	// source service id. The boolean is false when no mapping exists.
	Equivalent(sourceID string, target domain.Provider) (string, bool)

	// Checklists returns the checklists shared by every plan.
	Checklists() domain.Checklists
}
