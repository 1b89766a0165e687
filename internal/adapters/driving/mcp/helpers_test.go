package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

// newTestPorts wires the real services over the builtin catalog.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	catalog, err := services.NewCatalog(builtin.Records())
	require.NoError(t, err)

	return &Ports{
		Catalog:    catalog,
		Comparison: services.NewComparisonService(catalog),
		Regions:    services.NewRegionService(builtin.NewRegionSource()),
		Planner:    services.NewMigrationPlanner(catalog, builtin.MustGuidanceSource()),
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)
	return server
}
