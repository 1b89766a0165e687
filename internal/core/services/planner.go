package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

// Ensure MigrationPlanner implements the interface.
var _ driving.MigrationPlanner = (*MigrationPlanner)(nil)

// professionalServicesNote is added to complex plans.
const professionalServicesNote = "Consider engaging professional services for complex migrations."

// MigrationPlanner assembles canned migration guidance.
type MigrationPlanner struct {
	catalog  driving.CatalogService
	guidance driven.GuidanceSource
}

// NewMigrationPlanner creates a planner over catalog and the guidance tables.
func NewMigrationPlanner(catalog driving.CatalogService, guidance driven.GuidanceSource) *MigrationPlanner {
	return &MigrationPlanner{
		catalog:  catalog,
		guidance: guidance,
	}
}

// Strategy returns the strategy for a complexity level.
func (p *MigrationPlanner) Strategy(c domain.Complexity) (domain.MigrationStrategy, error) {
	strategy, ok := p.guidance.Strategy(c)
	if !ok {
		return domain.MigrationStrategy{}, fmt.Errorf("%w: unknown complexity %q", domain.ErrInvalidInput, c)
	}
	return strategy, nil
}

// Plan validates req and assembles the guidance for it.
func (p *MigrationPlanner) Plan(req domain.PlanRequest) (*domain.MigrationPlan, error) {
	logger.Section("Migration Plan")

	req, err := validatePlanRequest(req)
	if err != nil {
		return nil, err
	}
	logger.Debug("Source: %s, target: %s, complexity: %s", req.Source, req.Target, req.Complexity)

	strategy, err := p.Strategy(req.Complexity)
	if err != nil {
		return nil, err
	}
	advice, ok := p.guidance.Advice(req.Target)
	if !ok {
		return nil, fmt.Errorf("%w: no guidance for target %q", domain.ErrInvalidInput, req.Target)
	}

	plan := &domain.MigrationPlan{
		Request:    req,
		Strategy:   strategy,
		Advice:     advice,
		Candidates: p.candidates(req.Source),
		Timeline: []domain.Phase{
			{Name: "Assessment", Duration: "1-2 weeks"},
			{Name: "Planning", Duration: "1-2 weeks"},
			{Name: "Migration", Duration: strategy.Duration},
			{Name: "Optimization", Duration: "Ongoing"},
		},
		Checklists: p.guidance.Checklists(),
	}

	if req.ServiceID != "" {
		plan.Mapping = p.mapping(req.ServiceID, req.Target)
		logger.Debug("Mapped %s to %q", req.ServiceID, plan.Mapping.Target)
	}
	if req.Complexity == domain.ComplexityComplex {
		plan.Recommendation = professionalServicesNote
	}

	return plan, nil
}

// candidates returns the services a user may migrate from source.
func (p *MigrationPlanner) candidates(source string) []domain.ServiceRecord {
	if source == domain.OnPremise {
		return p.catalog.All()
	}
	return p.catalog.FilterByProvider(domain.ParseProvider(source))
}

// mapping resolves the equivalent target service for a source service id.
// Unknown ids and unmapped services fall back to domain.ManualAssessment.
func (p *MigrationPlanner) mapping(serviceID string, target domain.Provider) *domain.ServiceMapping {
	m := &domain.ServiceMapping{SourceID: serviceID, Target: domain.ManualAssessment}

	record, err := p.catalog.Get(serviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("lookup %s: %v", serviceID, err)
		}
		return m
	}
	m.SourceName = record.Name

	if name, ok := p.guidance.Equivalent(serviceID, target); ok {
		m.Target = name
	}
	return m
}

// validatePlanRequest checks the request and normalises the source key.
func validatePlanRequest(req domain.PlanRequest) (domain.PlanRequest, error) {
	req.Source = strings.ToLower(strings.TrimSpace(req.Source))
	if !domain.IsValidMigrationSource(req.Source) {
		return req, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, req.Source)
	}
	if !req.Target.IsValid() {
		return req, fmt.Errorf("%w: unknown target %q", domain.ErrInvalidInput, req.Target)
	}
	if req.Target.Key() == req.Source {
		return req, fmt.Errorf("%w: target must differ from source", domain.ErrInvalidInput)
	}
	if !req.Complexity.IsValid() {
		return req, fmt.Errorf("%w: unknown complexity %q", domain.ErrInvalidInput, req.Complexity)
	}
	for _, area := range req.Areas {
		if !area.IsValid() {
			return req, fmt.Errorf("%w: unknown service area %q", domain.ErrInvalidInput, area)
		}
	}
	return req, nil
}
