// Package migrations carries the schema of the local catalog database.
package migrations

import "embed"

// FS holds the numbered *.up.sql and *.down.sql files. The store applies
// the up files in name order and records each in schema_migrations.
//
//go:embed *.sql
var FS embed.FS
