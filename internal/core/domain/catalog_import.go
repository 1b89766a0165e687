package domain

import "time"

// CatalogImport records one catalog import into the local database.
type CatalogImport struct {
	// ID is a UUID assigned when the import is written.
	ID string `json:"id"`
	// Origin describes where the records came from (file path or "builtin").
	Origin string `json:"origin"`
	// Count is the number of records imported.
	Count int `json:"count"`
	// ImportedAt is when the import completed.
	ImportedAt time.Time `json:"imported_at"`
}
