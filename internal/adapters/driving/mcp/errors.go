// Package mcp provides an MCP (Model Context Protocol) server adapter for cloudcompass.
// It lets AI assistants search the service catalog, compare providers and
// draft migration plans.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
