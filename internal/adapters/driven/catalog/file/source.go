package file

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source reads a catalog file.
type Source struct {
	path string
}

// NewSource creates a source for the catalog file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.path
}

// Load reads and decodes the file.
func (s *Source) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatFromPath(s.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return Decode(format, data)
}

// Write encodes records into a catalog file at path, choosing the format
// from its extension.
func Write(path string, records []domain.ServiceRecord) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(format, records)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// Ensure Files implements the interface.
var _ driven.CatalogFiles = Files{}

// Files opens and writes catalog files on the local filesystem.
type Files struct{}

// Open returns a Source for path.
func (Files) Open(path string) driven.CatalogSource {
	return NewSource(path)
}

// Write writes records to path.
func (Files) Write(path string, records []domain.ServiceRecord) error {
	return Write(path, records)
}
