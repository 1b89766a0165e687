package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// It doubles as a fixture catalog source for tests.
type CatalogStore struct {
	mu      sync.RWMutex
	records []domain.ServiceRecord
	imports []domain.CatalogImport
	loadErr error
}

// NewCatalogStore creates an in-memory store holding records.
func NewCatalogStore(records ...domain.ServiceRecord) *CatalogStore {
	s := &CatalogStore{}
	s.records = cloneRecords(records)
	return s
}

// FailLoads makes every subsequent Load return err. Pass nil to clear.
func (s *CatalogStore) FailLoads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// Name identifies the store.
func (s *CatalogStore) Name() string {
	return "memory"
}

// Load returns the stored records in order.
func (s *CatalogStore) Load(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if len(s.records) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return cloneRecords(s.records), nil
}

// Import replaces the stored records.
func (s *CatalogStore) Import(
	_ context.Context, origin string, records []domain.ServiceRecord,
) (*domain.CatalogImport, error) {
	if len(records) == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imp := domain.CatalogImport{
		ID:         uuid.NewString(),
		Origin:     origin,
		Count:      len(records),
		ImportedAt: time.Now().UTC(),
	}
	s.records = cloneRecords(records)
	s.imports = append(s.imports, imp)
	return &imp, nil
}

// Imports returns the import history, newest first.
func (s *CatalogStore) Imports(_ context.Context) ([]domain.CatalogImport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CatalogImport, 0, len(s.imports))
	for i := len(s.imports) - 1; i >= 0; i-- {
		out = append(out, s.imports[i])
	}
	return out, nil
}

// Close is a no-op.
func (s *CatalogStore) Close() error {
	return nil
}

func cloneRecords(records []domain.ServiceRecord) []domain.ServiceRecord {
	if records == nil {
		return nil
	}
	out := make([]domain.ServiceRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
