package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store is a SQLite-backed catalog store.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.cloudcompass/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cloudcompass", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		now:  func() time.Time { return time.Now().UTC() },
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Name identifies the store as a catalog source.
func (s *Store) Name() string {
	return "sqlite:" + s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_catalog.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Import replaces the stored catalog with records in a single transaction.
func (s *Store) Import(
	ctx context.Context, origin string, records []domain.ServiceRecord,
) (*domain.CatalogImport, error) {
	if len(records) == 0 {
		return nil, domain.ErrCatalogEmpty
	}

	imp := &domain.CatalogImport{
		ID:         uuid.NewString(),
		Origin:     origin,
		Count:      len(records),
		ImportedAt: s.now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO catalog_imports (id, origin, count, imported_at)
		VALUES (?, ?, ?, ?)
	`, imp.ID, imp.Origin, imp.Count, imp.ImportedAt); err != nil {
		return nil, fmt.Errorf("recording import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM services"); err != nil {
		return nil, fmt.Errorf("clearing services: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO services (position, id, import_id, name, provider, category, description, pricing,
			features, regions, tags, free_tier, popular, documentation_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		features, regions, tags, err := encodeLists(r)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", r.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			i, r.ID, imp.ID, r.Name, string(r.Provider), string(r.Category), r.Description, r.Pricing,
			features, regions, tags, r.FreeTier, r.Popular, nullString(r.DocumentationURL),
		); err != nil {
			return nil, fmt.Errorf("inserting %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}
	return imp, nil
}

// Load returns the stored catalog in import order.
func (s *Store) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, provider, category, description, pricing,
			features, regions, tags, free_tier, popular, documentation_url
		FROM services ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var records []domain.ServiceRecord
	for rows.Next() {
		var r domain.ServiceRecord
		var provider, category, features, regions, tags string
		var docURL sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &provider, &category, &r.Description, &r.Pricing,
			&features, &regions, &tags, &r.FreeTier, &r.Popular, &docURL); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		r.Provider = domain.Provider(provider)
		r.Category = domain.Category(category)
		r.DocumentationURL = docURL.String
		if err := decodeLists(&r, features, regions, tags); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}

	if len(records) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return records, nil
}

// Imports returns the import history, newest first.
func (s *Store) Imports(ctx context.Context) ([]domain.CatalogImport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, origin, count, imported_at
		FROM catalog_imports ORDER BY imported_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	imports := []domain.CatalogImport{}
	for rows.Next() {
		var imp domain.CatalogImport
		if err := rows.Scan(&imp.ID, &imp.Origin, &imp.Count, &imp.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning import: %w", err)
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// ==================== Helpers ====================

func encodeLists(r domain.ServiceRecord) (features, regions, tags string, err error) {
	lists := []*string{&features, &regions, &tags}
	for i, list := range [][]string{r.Features, r.Regions, r.Tags} {
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return "", "", "", err
		}
		*lists[i] = string(data)
	}
	return features, regions, tags, nil
}

func decodeLists(r *domain.ServiceRecord, features, regions, tags string) error {
	if err := json.Unmarshal([]byte(features), &r.Features); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(regions), &r.Regions); err != nil {
		return err
	}
	return json.Unmarshal([]byte(tags), &r.Tags)
}

// nullString returns a sql.NullString that is NULL for empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
