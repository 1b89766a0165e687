package driven

import (
	"context"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// CatalogSource loads the service catalog.
// The catalog is read once at startup; sources are never consulted again.
type CatalogSource interface {
	// Load returns every record in catalog order.
	Load(ctx context.Context) ([]domain.ServiceRecord, error)

	// Name identifies the source in logs and import history.
	Name() string
}

// CatalogStore persists imported catalogs.
// A store is also a CatalogSource that returns the most recent import.
type CatalogStore interface {
	CatalogSource

	// Import replaces the stored catalog with records atomically
	// and records the import in the history.
	Import(ctx context.Context, origin string, records []domain.ServiceRecord) (*domain.CatalogImport, error)

	// Imports returns the import history, newest first.
	Imports(ctx context.Context) ([]domain.CatalogImport, error)

	// Close releases the underlying resources.
	Close() error
}

// CatalogFiles opens and writes catalog files by path.
// The file format is chosen from the extension.
type CatalogFiles interface {
	// Open returns a source reading the file at path.
	Open(path string) CatalogSource

	// Write encodes records into the file at path.
	Write(path string, records []domain.ServiceRecord) error
}
