package builtin

import (
	"context"
	_ "embed"

	catalogfile "github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

//go:embed catalog.toml
var catalogTOML []byte

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

// CatalogSource serves the built-in catalog.
type CatalogSource struct{}

// NewCatalogSource creates the built-in catalog source.
func NewCatalogSource() *CatalogSource {
	return &CatalogSource{}
}

// Name identifies the source.
func (s *CatalogSource) Name() string {
	return "builtin"
}

// Load decodes the embedded catalog. Each call returns fresh records.
func (s *CatalogSource) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return catalogfile.Decode(catalogfile.FormatTOML, catalogTOML)
}

// Records returns the built-in catalog. It panics if the embedded data
// is malformed, which the package tests rule out.
func Records() []domain.ServiceRecord {
	records, err := catalogfile.Decode(catalogfile.FormatTOML, catalogTOML)
	if err != nil {
		panic("builtin catalog: " + err.Error())
	}
	return records
}
