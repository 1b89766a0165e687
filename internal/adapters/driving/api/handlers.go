package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

// ServicesResponse is returned by GET /api/v1/services.
type ServicesResponse struct {
	Filters domain.ExplorerFilters `json:"filters"`
	Count   int                    `json:"count"`
	Results []domain.ServiceRecord `json:"results"`
	Groups  []GroupResponse        `json:"groups,omitempty"`
}

// GroupResponse is one category group of a grouped listing.
type GroupResponse struct {
	Category domain.Category        `json:"category"`
	Services []domain.ServiceRecord `json:"services"`
}

// CategoryResponse describes one catalog category.
type CategoryResponse struct {
	Name     domain.Category `json:"name"`
	Type     string          `json:"type"`
	Services int             `json:"services"`
}

// ComparisonResponse is returned by the category comparison route.
type ComparisonResponse struct {
	Category domain.Category        `json:"category"`
	Rows     []ComparisonRowBody    `json:"rows"`
	Counts   []domain.ProviderCount `json:"counts"`
}

// ComparisonRowBody holds one aligned row; a null slot means no service.
type ComparisonRowBody struct {
	AWS      *domain.ServiceRecord `json:"aws"`
	Azure    *domain.ServiceRecord `json:"azure"`
	GCP      *domain.ServiceRecord `json:"gcp"`
	Complete bool                  `json:"complete"`
}

// RegionsResponse is returned by GET /api/v1/regions.
type RegionsResponse struct {
	Providers []domain.ProviderRegions `json:"providers"`
	Overview  domain.RegionOverview    `json:"overview"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Services int    `json:"services"`
}

// Health reports liveness and the catalog size.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Services: len(s.ports.Catalog.All())})
}

// ListServices runs the explorer query given by term, category and provider.
// popular and free_tier narrow the results; group=true adds category groups.
func (s *Server) ListServices(c echo.Context) error {
	filters := domain.ExplorerFilters{
		Term:     c.QueryParam("term"),
		Category: c.QueryParam("category"),
		Provider: c.QueryParam("provider"),
	}

	var err error
	if filters.Popular, err = boolParam(c, "popular"); err != nil {
		return err
	}
	if filters.FreeTier, err = boolParam(c, "free_tier"); err != nil {
		return err
	}
	grouped, err := boolParam(c, "group")
	if err != nil {
		return err
	}

	projection := s.ports.Catalog.Explore(filters)
	resp := ServicesResponse{
		Filters: projection.Filters,
		Count:   projection.Count,
		Results: projection.Results,
	}
	if grouped {
		for _, g := range projection.Groups {
			resp.Groups = append(resp.Groups, GroupResponse{Category: g.Category, Services: g.Services})
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetService returns one record by id.
func (s *Server) GetService(c echo.Context) error {
	id := c.Param("id")
	record, err := s.ports.Catalog.Get(id)
	if err != nil {
		return fmt.Errorf("service %q: %w", id, err)
	}
	return c.JSON(http.StatusOK, record)
}

// ListCategories returns the categories present in the catalog.
func (s *Server) ListCategories(c echo.Context) error {
	categories := s.ports.Catalog.Categories()
	resp := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = CategoryResponse{
			Name:     cat,
			Type:     cat.ServiceType(),
			Services: len(s.ports.Catalog.FilterByCategory(cat)),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CompareCategory aligns the services of one category by provider.
func (s *Server) CompareCategory(c echo.Context) error {
	if s.ports.Comparison == nil {
		return domain.ErrNotImplemented
	}

	comparison := s.ports.Comparison.CompareCategory(domain.ParseCategory(c.Param("category")))
	resp := ComparisonResponse{
		Category: comparison.Category,
		Rows:     make([]ComparisonRowBody, len(comparison.Rows)),
		Counts:   comparison.Counts,
	}
	for i, row := range comparison.Rows {
		resp.Rows[i] = ComparisonRowBody{AWS: row.AWS, Azure: row.Azure, GCP: row.GCP, Complete: row.Complete()}
	}
	return c.JSON(http.StatusOK, resp)
}

// ListRegions returns the region table, optionally for one provider.
func (s *Server) ListRegions(c echo.Context) error {
	if s.ports.Regions == nil {
		return domain.ErrNotImplemented
	}
	return c.JSON(http.StatusOK, RegionsResponse{
		Providers: s.ports.Regions.Regions(c.QueryParam("provider")),
		Overview:  s.ports.Regions.Overview(),
	})
}

// Stats returns the catalog statistics.
func (s *Server) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.ports.Catalog.Stats())
}

// CreatePlan builds a migration plan from a JSON PlanRequest body.
func (s *Server) CreatePlan(c echo.Context) error {
	if s.ports.Planner == nil {
		return domain.ErrNotImplemented
	}

	var req domain.PlanRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if req.Complexity == "" {
		req.Complexity = domain.ComplexityMedium
	}
	req.Target = domain.ParseProvider(string(req.Target))

	plan, err := s.ports.Planner.Plan(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func boolParam(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidInput, name)
	}
	return v, nil
}
