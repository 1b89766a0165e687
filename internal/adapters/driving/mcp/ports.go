package mcp

import (
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides the catalog queries.
	Catalog driving.CatalogService

	// Comparison aligns services across providers.
	Comparison driving.ComparisonService

	// Regions lists provider regions.
	Regions driving.RegionService

	// Planner builds migration plans.
	Planner driving.MigrationPlanner
}

// Validate ensures all required ports are set.
// Only the catalog is required; tools backed by a missing port are not registered.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
