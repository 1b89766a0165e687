// Package api serves the catalog over a read-only JSON HTTP API built on echo.
package api

import (
	"errors"

	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("api: catalog service is required")

// Ports aggregates the driving ports used by the HTTP handlers.
type Ports struct {
	Catalog    driving.CatalogService
	Comparison driving.ComparisonService
	Regions    driving.RegionService
	Planner    driving.MigrationPlanner
}

// Validate ensures the required ports are set.
// Routes backed by a missing optional port answer 501.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
