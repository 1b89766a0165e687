package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for cloudcompass resources.
	uriScheme = "cloudcompass://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing categories with their service counts.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Service categories present in the catalog",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	// Template for a single service record.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "services/{serviceId}",
		Name:        "service",
		Description: "Full record of a cloud service",
		MIMEType:    "application/json",
	}, s.handleServiceResource)
}

// handleCategoriesResource returns the categories in catalog order.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type categoryInfo struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Services int    `json:"services"`
	}

	categories := s.ports.Catalog.Categories()
	infos := make([]categoryInfo, len(categories))
	for i, c := range categories {
		infos[i] = categoryInfo{
			Name:     c.String(),
			Type:     c.ServiceType(),
			Services: len(s.ports.Catalog.FilterByCategory(c)),
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleServiceResource returns one service record.
func (s *Server) handleServiceResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract serviceId from URI: cloudcompass://services/{serviceId}
	serviceID := extractServiceID(req.Params.URI)
	if serviceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Catalog.Get(serviceID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, toServiceOutput(*record))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractServiceID extracts the service ID from a URI like cloudcompass://services/{serviceId}.
func extractServiceID(uri string) string {
	const prefix = uriScheme + "services/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
