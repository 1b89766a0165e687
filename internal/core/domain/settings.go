package domain

// CatalogSourceKind selects where the catalog is loaded from at startup.
type CatalogSourceKind string

// Available catalog sources.
const (
	// CatalogSourceBuiltin is the static catalog compiled into the binary.
	CatalogSourceBuiltin CatalogSourceKind = "builtin"

	// CatalogSourceFile reads a TOML, YAML or JSON catalog file.
	CatalogSourceFile CatalogSourceKind = "file"

	// CatalogSourceSQLite reads the last catalog imported into the local database.
	CatalogSourceSQLite CatalogSourceKind = "sqlite"
)

// IsValid returns true if the source kind is recognised.
func (k CatalogSourceKind) IsValid() bool {
	switch k {
	case CatalogSourceBuiltin, CatalogSourceFile, CatalogSourceSQLite:
		return true
	default:
		return false
	}
}

// RequiresPath returns true if this source needs a file path.
func (k CatalogSourceKind) RequiresPath() bool {
	return k == CatalogSourceFile
}

// String returns the string representation.
func (k CatalogSourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the source.
func (k CatalogSourceKind) Description() string {
	switch k {
	case CatalogSourceBuiltin:
		return "Built-in catalog"
	case CatalogSourceFile:
		return "Catalog file (TOML, YAML or JSON)"
	case CatalogSourceSQLite:
		return "Imported catalog (local database)"
	default:
		return unknownDescription
	}
}

// OutputFormat controls how the CLI prints results.
type OutputFormat string

// Available output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == OutputTable || f == OutputJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// CatalogSettings configures the catalog data source.
type CatalogSettings struct {
	// Source selects the catalog adapter.
	Source CatalogSourceKind

	// Path is the catalog file for the file source.
	Path string
}

// OutputSettings configures CLI output.
type OutputSettings struct {
	// Format is the default output format.
	Format OutputFormat
}

// ExplorerSettings holds the initial explorer filters.
type ExplorerSettings struct {
	// Category is a category name or Wildcard.
	Category string

	// Provider is a provider name or Wildcard.
	Provider string
}

// PlannerSettings holds the planner defaults.
type PlannerSettings struct {
	// Source is the default migration source (provider key or OnPremise).
	Source string

	// Target is the default target provider.
	Target Provider

	// Complexity is the default complexity level.
	Complexity Complexity
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Catalog  CatalogSettings
	Output   OutputSettings
	Explorer ExplorerSettings
	Planner  PlannerSettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog: CatalogSettings{
			Source: CatalogSourceBuiltin,
		},
		Output: OutputSettings{
			Format: OutputTable,
		},
		Explorer: ExplorerSettings{
			Category: Wildcard,
			Provider: Wildcard,
		},
		Planner: PlannerSettings{
			Source:     ProviderAWS.Key(),
			Target:     ProviderGCP,
			Complexity: ComplexityMedium,
		},
	}
}

// IsValidMigrationSource returns true for provider keys and OnPremise.
func IsValidMigrationSource(source string) bool {
	if source == OnPremise {
		return true
	}
	return ParseProvider(source).IsValid()
}
