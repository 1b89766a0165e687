package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/logger"
	"github.com/custodia-labs/cloudcompass/internal/metrics"
)

// SearchInput is the input schema for the search_services tool.
type SearchInput struct {
	Term         string `json:"term,omitempty" jsonschema:"text matched against service names and descriptions"`
	Category     string `json:"category,omitempty" jsonschema:"category name such as Compute or AI/ML, or all"`
	Provider     string `json:"provider,omitempty" jsonschema:"AWS, Azure, GCP or all"`
	PopularOnly  bool   `json:"popular_only,omitempty" jsonschema:"only return popular services"`
	FreeTierOnly bool   `json:"free_tier_only,omitempty" jsonschema:"only return services with a free tier"`
}

// SearchOutput is the output schema for the search_services tool.
type SearchOutput struct {
	Results []ServiceOutput `json:"results"`
	Count   int             `json:"count"`
}

// ServiceOutput is a service record as returned to assistants.
type ServiceOutput struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Provider         string   `json:"provider"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Pricing          string   `json:"pricing"`
	Features         []string `json:"features,omitempty"`
	Regions          []string `json:"regions,omitempty"`
	FreeTier         bool     `json:"free_tier"`
	Popular          bool     `json:"popular"`
	DocumentationURL string   `json:"documentation_url,omitempty"`
}

// GetServiceInput is the input schema for the get_service tool.
type GetServiceInput struct {
	ID string `json:"id" jsonschema:"service id such as aws-ec2"`
}

// CompareInput is the input schema for the compare_category tool.
type CompareInput struct {
	Category string `json:"category" jsonschema:"category to compare across providers"`
}

// CompareOutput is the output schema for the compare_category tool.
type CompareOutput struct {
	Category string       `json:"category"`
	Rows     []CompareRow `json:"rows"`
	Counts   []CountEntry `json:"counts"`
}

// CompareRow holds the service ids placed side by side. Empty means no service.
type CompareRow struct {
	AWS      string `json:"aws"`
	Azure    string `json:"azure"`
	GCP      string `json:"gcp"`
	Complete bool   `json:"complete" jsonschema:"every provider has a service in this row"`
}

// CountEntry is a labelled count.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RegionsInput is the input schema for the list_regions tool.
type RegionsInput struct {
	Provider string `json:"provider,omitempty" jsonschema:"AWS, Azure, GCP or all"`
}

// RegionsOutput is the output schema for the list_regions tool.
type RegionsOutput struct {
	Providers     []domain.ProviderRegions `json:"providers"`
	TotalRegions  int                      `json:"total_regions"`
	BestLatencyMS int                      `json:"best_latency_ms"`
}

// PlanInput is the input schema for the plan_migration tool.
type PlanInput struct {
	Source     string   `json:"source" jsonschema:"aws, azure, gcp or on-premise"`
	Target     string   `json:"target" jsonschema:"AWS, Azure or GCP"`
	Complexity string   `json:"complexity,omitempty" jsonschema:"simple, medium or complex (default medium)"`
	Areas      []string `json:"areas,omitempty" jsonschema:"service areas to migrate"`
	ServiceID  string   `json:"service_id,omitempty" jsonschema:"service to map to its equivalent on the target"`
}

// PlanOutput is the output schema for the plan_migration tool.
type PlanOutput struct {
	Duration       string         `json:"duration"`
	Approach       string         `json:"approach"`
	Description    string         `json:"description"`
	Effort         string         `json:"effort"`
	RiskLevel      string         `json:"risk_level"`
	Tools          []string       `json:"tools"`
	Strengths      []string       `json:"strengths"`
	Considerations []string       `json:"considerations"`
	Equivalent     string         `json:"equivalent,omitempty"`
	Timeline       []domain.Phase `json:"timeline"`
	Candidates     []string       `json:"candidates"`
	Recommendation string         `json:"recommendation,omitempty"`
}

// StatsOutput is the output schema for the catalog_stats tool.
type StatsOutput struct {
	Total        int          `json:"total"`
	Popular      int          `json:"popular"`
	FreeTier     int          `json:"free_tier"`
	TotalRegions int          `json:"total_regions"`
	ByProvider   []CountEntry `json:"by_provider"`
	ByCategory   []CountEntry `json:"by_category"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_services",
		Description: "Search the cloud service catalog by text, category and provider",
	}, instrument("search_services", s.handleSearch))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_service",
		Description: "Get the full record of one cloud service",
	}, instrument("get_service", s.handleGetService))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "catalog_stats",
		Description: "Summarise the catalog by provider and category",
	}, instrument("catalog_stats", s.handleStats))

	if s.ports.Comparison != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "compare_category",
			Description: "Line up AWS, Azure and GCP services of one category",
		}, instrument("compare_category", s.handleCompare))
	}

	if s.ports.Regions != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_regions",
			Description: "List provider regions with typical latency",
		}, instrument("list_regions", s.handleRegions))
	}

	if s.ports.Planner != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "plan_migration",
			Description: "Draft a migration plan between providers",
		}, instrument("plan_migration", s.handlePlan))
	}
}

// instrument records call counts and latency for a tool handler.
func instrument[In, Out any](name string, h mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, Out, error) {
		start := time.Now()
		res, out, err := h(ctx, req, in)
		elapsed := time.Since(start)
		metrics.ObserveToolCall(name, err, elapsed)
		log := logger.With("mcp")
		log.Debug().Str("tool", name).Dur("elapsed", elapsed).Err(err).Msg("tool call")
		return res, out, err
	}
}

// handleSearch handles the search_services tool invocation.
func (s *Server) handleSearch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	projection := s.ports.Catalog.Explore(domain.ExplorerFilters{
		Term:     input.Term,
		Category: input.Category,
		Provider: input.Provider,
		Popular:  input.PopularOnly,
		FreeTier: input.FreeTierOnly,
	})

	output := SearchOutput{
		Results: make([]ServiceOutput, len(projection.Results)),
		Count:   projection.Count,
	}
	for i := range projection.Results {
		output.Results[i] = toServiceOutput(projection.Results[i])
	}

	return nil, output, nil
}

// handleGetService handles the get_service tool invocation.
func (s *Server) handleGetService(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetServiceInput,
) (*mcp.CallToolResult, ServiceOutput, error) {
	record, err := s.ports.Catalog.Get(input.ID)
	if err != nil {
		return nil, ServiceOutput{}, fmt.Errorf("service %q: %w", input.ID, err)
	}
	return nil, toServiceOutput(*record), nil
}

// handleCompare handles the compare_category tool invocation.
func (s *Server) handleCompare(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CompareInput,
) (*mcp.CallToolResult, CompareOutput, error) {
	comparison := s.ports.Comparison.CompareCategory(domain.ParseCategory(input.Category))
	output := CompareOutput{
		Category: comparison.Category.String(),
		Rows:     make([]CompareRow, len(comparison.Rows)),
		Counts:   make([]CountEntry, len(comparison.Counts)),
	}
	for i, row := range comparison.Rows {
		output.Rows[i] = CompareRow{
			AWS:      slotID(row.AWS),
			Azure:    slotID(row.Azure),
			GCP:      slotID(row.GCP),
			Complete: row.Complete(),
		}
	}
	for i, c := range comparison.Counts {
		output.Counts[i] = CountEntry{Name: c.Provider.String(), Count: c.Count}
	}
	return nil, output, nil
}

// handleRegions handles the list_regions tool invocation.
func (s *Server) handleRegions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RegionsInput,
) (*mcp.CallToolResult, RegionsOutput, error) {
	overview := s.ports.Regions.Overview()
	return nil, RegionsOutput{
		Providers:     s.ports.Regions.Regions(input.Provider),
		TotalRegions:  overview.TotalRegions,
		BestLatencyMS: overview.BestLatencyMS,
	}, nil
}

// handlePlan handles the plan_migration tool invocation.
func (s *Server) handlePlan(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PlanInput,
) (*mcp.CallToolResult, PlanOutput, error) {
	complexity := domain.Complexity(strings.ToLower(input.Complexity))
	if complexity == "" {
		complexity = domain.ComplexityMedium
	}

	req := domain.PlanRequest{
		Source:     input.Source,
		Target:     domain.ParseProvider(input.Target),
		Complexity: complexity,
		ServiceID:  input.ServiceID,
	}
	for _, a := range input.Areas {
		req.Areas = append(req.Areas, domain.ServiceArea(strings.ToLower(a)))
	}

	plan, err := s.ports.Planner.Plan(req)
	if err != nil {
		return nil, PlanOutput{}, err
	}

	output := PlanOutput{
		Duration:       plan.Strategy.Duration,
		Approach:       plan.Strategy.Approach,
		Description:    plan.Strategy.Description,
		Effort:         plan.Strategy.Effort,
		RiskLevel:      plan.Strategy.RiskLevel,
		Tools:          plan.Strategy.Tools,
		Strengths:      plan.Advice.Strengths,
		Considerations: plan.Advice.Considerations,
		Timeline:       plan.Timeline,
		Candidates:     make([]string, len(plan.Candidates)),
		Recommendation: plan.Recommendation,
	}
	if plan.Mapping != nil {
		output.Equivalent = plan.Mapping.Target
	}
	for i := range plan.Candidates {
		output.Candidates[i] = plan.Candidates[i].ID
	}
	return nil, output, nil
}

// handleStats handles the catalog_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats := s.ports.Catalog.Stats()
	output := StatsOutput{
		Total:        stats.Total,
		Popular:      stats.Popular,
		FreeTier:     stats.FreeTier,
		TotalRegions: stats.TotalRegions,
		ByProvider:   make([]CountEntry, len(stats.ByProvider)),
		ByCategory:   make([]CountEntry, len(stats.ByCategory)),
	}
	for i, c := range stats.ByProvider {
		output.ByProvider[i] = CountEntry{Name: c.Provider.String(), Count: c.Count}
	}
	for i, c := range stats.ByCategory {
		output.ByCategory[i] = CountEntry{Name: c.Category.String(), Count: c.Count}
	}
	return nil, output, nil
}

func toServiceOutput(r domain.ServiceRecord) ServiceOutput {
	return ServiceOutput{
		ID:               r.ID,
		Name:             r.Name,
		Provider:         r.Provider.String(),
		Category:         r.Category.String(),
		Description:      r.Description,
		Pricing:          r.Pricing,
		Features:         r.Features,
		Regions:          r.Regions,
		FreeTier:         r.FreeTier,
		Popular:          r.Popular,
		DocumentationURL: r.DocumentationURL,
	}
}

func slotID(r *domain.ServiceRecord) string {
	if r == nil {
		return ""
	}
	return r.ID
}
