// Package tui provides an interactive terminal user interface for cloudcompass.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

var (
	// ErrMissingCatalogService is returned when the catalog service is not provided.
	ErrMissingCatalogService = errors.New("tui: catalog service is required")

	// ErrInvalidPorts is returned for a nil Ports.
	ErrInvalidPorts = errors.New("tui: invalid ports configuration")
)

// Ports gathers the driving ports the views read from.
type Ports struct {
	// Catalog answers explorer and dashboard queries.
	Catalog driving.CatalogService

	// Comparison aligns a category by provider.
	Comparison driving.ComparisonService

	// Regions exposes the region latency table.
	Regions driving.RegionService

	// Planner produces migration guidance.
	Planner driving.MigrationPlanner

	// Settings manages application settings.
	Settings driving.SettingsService

	// SettingsChanges fires after the config file is reloaded from disk.
	// Optional; closed when watching stops.
	SettingsChanges <-chan struct{}
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	comparison driving.ComparisonService,
	regions driving.RegionService,
	planner driving.MigrationPlanner,
) *Ports {
	return &Ports{
		Catalog:    catalog,
		Comparison: comparison,
		Regions:    regions,
		Planner:    planner,
	}
}

// Validate ensures the required ports are set.
// Only the catalog is mandatory; views backed by a missing port
// report that the feature is unavailable.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
