// Package services holds the catalog query layer and the consumers built on
// it: explorer projection, category comparison, region lookup, migration
// planning, settings and catalog import/export.
//
// The catalog is loaded once and never mutated, so a single *Catalog is
// shared by every service and every server goroutine without locking.
package services
