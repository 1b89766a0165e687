package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

// LoadCatalog reads source once and builds the immutable catalog.
func LoadCatalog(ctx context.Context, source driven.CatalogSource) (*Catalog, error) {
	logger.Section("Catalog Load")
	logger.Debug("Source: %s", source.Name())

	records, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", source.Name(), err)
	}

	catalog, err := NewCatalog(records)
	if err != nil {
		return nil, fmt.Errorf("catalog from %s: %w", source.Name(), err)
	}

	logger.Info("Loaded %d services from %s", catalog.Len(), source.Name())
	return catalog, nil
}

// Ensure CatalogImporter implements the interface.
var _ driving.CatalogAdmin = (*CatalogImporter)(nil)

// CatalogImporter copies catalogs between files and the local store.
type CatalogImporter struct {
	catalog driving.CatalogService
	store   driven.CatalogStore
	files   driven.CatalogFiles
}

// NewCatalogImporter creates an importer. catalog is the loaded catalog
// used for export; store and files may be nil when the feature is unused.
func NewCatalogImporter(
	catalog driving.CatalogService,
	store driven.CatalogStore,
	files driven.CatalogFiles,
) *CatalogImporter {
	return &CatalogImporter{catalog: catalog, store: store, files: files}
}

// Import loads the catalog file at path and stores it.
func (i *CatalogImporter) Import(ctx context.Context, path string) (*domain.CatalogImport, error) {
	if i.files == nil {
		return nil, domain.ErrNotImplemented
	}
	if path == "" {
		return nil, fmt.Errorf("%w: catalog path required", domain.ErrInvalidInput)
	}
	return i.ImportSource(ctx, i.files.Open(path))
}

// ImportSource validates the records of source and replaces the stored
// catalog with them. Nothing is written when validation fails.
func (i *CatalogImporter) ImportSource(ctx context.Context, source driven.CatalogSource) (*domain.CatalogImport, error) {
	if i.store == nil {
		return nil, domain.ErrNotImplemented
	}

	catalog, err := LoadCatalog(ctx, source)
	if err != nil {
		return nil, err
	}

	imp, err := i.store.Import(ctx, source.Name(), catalog.All())
	if err != nil {
		return nil, fmt.Errorf("import catalog: %w", err)
	}
	logger.Info("Import %s stored %d services", imp.ID, imp.Count)
	return imp, nil
}

// Export writes the loaded catalog to path.
func (i *CatalogImporter) Export(ctx context.Context, path string) (int, error) {
	if i.files == nil || i.catalog == nil {
		return 0, domain.ErrNotImplemented
	}
	if path == "" {
		return 0, fmt.Errorf("%w: catalog path required", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	records := i.catalog.All()
	if err := i.files.Write(path, records); err != nil {
		return 0, fmt.Errorf("export catalog: %w", err)
	}
	logger.Debug("Exported %d services to %s", len(records), path)
	return len(records), nil
}

// History returns the imports recorded in the store, newest first.
func (i *CatalogImporter) History(ctx context.Context) ([]domain.CatalogImport, error) {
	if i.store == nil {
		return nil, domain.ErrNotImplemented
	}
	imports, err := i.store.Imports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	return imports, nil
}

// IsCatalogError reports whether err was caused by invalid or missing
// catalog data rather than an I/O failure.
func IsCatalogError(err error) bool {
	return errors.Is(err, domain.ErrInvalidCatalog) ||
		errors.Is(err, domain.ErrCatalogEmpty) ||
		errors.Is(err, domain.ErrUnsupportedFormat)
}
