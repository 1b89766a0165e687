// Package domain defines the core entities for cloudcompass.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceRecord: A single cloud service offered by a provider
//   - Provider and Category: The closed enumerations a record is drawn from
//   - Region: A provider region with its estimated latency
//   - MigrationStrategy and ProviderAdvice: Static migration guidance
//   - Selection: The transient set of services picked for comparison
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
