package domain

import "strings"

// OnPremise is the migration source for workloads outside any cloud provider.
const OnPremise = "on-premise"

// ManualAssessment is returned when no equivalent service is known.
const ManualAssessment = "Manual assessment needed"

// Complexity describes how entangled the migrated workload is.
type Complexity string

// Migration complexity levels.
const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// AllComplexities returns the complexity levels from least to most involved.
func AllComplexities() []Complexity {
	return []Complexity{ComplexitySimple, ComplexityMedium, ComplexityComplex}
}

// IsValid returns true if the complexity is recognised.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Complexity) String() string {
	return string(c)
}

// Description returns a human-readable description of the level.
func (c Complexity) Description() string {
	switch c {
	case ComplexitySimple:
		return "Simple (Few dependencies)"
	case ComplexityMedium:
		return "Medium (Some integration)"
	case ComplexityComplex:
		return "Complex (Highly integrated)"
	default:
		return unknownDescription
	}
}

// ServiceArea is a broad workload area the user plans to migrate.
type ServiceArea string

// Service areas offered by the planner.
const (
	AreaCompute    ServiceArea = "compute"
	AreaStorage    ServiceArea = "storage"
	AreaDatabase   ServiceArea = "database"
	AreaServerless ServiceArea = "serverless"
	AreaNetworking ServiceArea = "networking"
	AreaSecurity   ServiceArea = "security"
)

// AllServiceAreas returns the selectable areas in display order.
func AllServiceAreas() []ServiceArea {
	return []ServiceArea{AreaCompute, AreaStorage, AreaDatabase, AreaServerless, AreaNetworking, AreaSecurity}
}

// IsValid returns true if the area is recognised.
func (a ServiceArea) IsValid() bool {
	for _, known := range AllServiceAreas() {
		if a == known {
			return true
		}
	}
	return false
}

// Label returns the display name of the area.
func (a ServiceArea) Label() string {
	if a == AreaCompute {
		return "Compute/VMs"
	}
	s := string(a)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// MigrationStrategy is the canned approach for a complexity level.
type MigrationStrategy struct {
	Complexity  Complexity `json:"complexity"`
	Duration    string     `json:"duration"`
	Approach    string     `json:"approach"`
	Description string     `json:"description"`
	Effort      string     `json:"effort"`
	RiskLevel   string     `json:"risk_level"`
	Tools       []string   `json:"tools"`
}

// ProviderAdvice lists the strengths and considerations of a target provider.
type ProviderAdvice struct {
	Provider       Provider `json:"provider"`
	Strengths      []string `json:"strengths"`
	Considerations []string `json:"considerations"`
}

// Phase is one step of the migration timeline.
type Phase struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// TipGroup is a titled list of cost-saving tips.
type TipGroup struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
}

// Checklists holds the static guidance shared by every plan.
type Checklists struct {
	PreMigration []string   `json:"pre_migration"`
	Dos          []string   `json:"dos"`
	Donts        []string   `json:"donts"`
	CostTips     []TipGroup `json:"cost_tips"`
}

// PlanRequest captures the planner inputs.
// Source is a provider key ("aws", "azure", "gcp") or OnPremise.
type PlanRequest struct {
	Source     string        `json:"source"`
	Target     Provider      `json:"target"`
	Complexity Complexity    `json:"complexity"`
	Areas      []ServiceArea `json:"areas,omitempty"`
	ServiceID  string        `json:"service_id,omitempty"`
}

// ServiceMapping is the suggested target for a specific source service.
type ServiceMapping struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	Target     string `json:"target"`
}

// MigrationPlan is the guidance produced for a PlanRequest.
type MigrationPlan struct {
	Request        PlanRequest       `json:"request"`
	Strategy       MigrationStrategy `json:"strategy"`
	Advice         ProviderAdvice    `json:"advice"`
	Mapping        *ServiceMapping   `json:"mapping,omitempty"`
	Candidates     []ServiceRecord   `json:"candidates"`
	Timeline       []Phase           `json:"timeline"`
	Checklists     Checklists        `json:"checklists"`
	Recommendation string            `json:"recommendation,omitempty"`
}
