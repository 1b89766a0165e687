// Package driving defines what the presentation adapters (CLI, TUI, MCP
// server, HTTP API) may ask of the core.
//
// The implementations live in internal/core/services. Adapters depend on
// these interfaces only, which keeps them testable with hand-written fakes.
package driving
