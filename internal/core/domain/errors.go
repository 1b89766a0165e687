package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Catalog Errors.

	// ErrInvalidCatalog indicates a catalog violates its invariants
	// (duplicate id, unknown provider or unknown category).
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrCatalogEmpty indicates a catalog source produced no records.
	ErrCatalogEmpty = errors.New("catalog is empty")

	// ErrUnsupportedFormat indicates an unknown catalog file format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
