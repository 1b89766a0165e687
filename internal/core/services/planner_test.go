package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

func newTestPlanner(t *testing.T) *MigrationPlanner {
	t.Helper()
	return NewMigrationPlanner(builtinCatalog(t), builtin.MustGuidanceSource())
}

func TestMigrationPlanner_Plan_Defaults(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(domain.PlanRequest{
		Source:     "aws",
		Target:     domain.ProviderGCP,
		Complexity: domain.ComplexityMedium,
	})

	require.NoError(t, err)
	assert.Equal(t, "Re-platform", plan.Strategy.Approach)
	assert.Equal(t, "1-3 months", plan.Strategy.Duration)
	assert.Equal(t, domain.ProviderGCP, plan.Advice.Provider)
	assert.Nil(t, plan.Mapping)
	assert.Empty(t, plan.Recommendation)
	assert.Len(t, plan.Candidates, 11)
	for _, r := range plan.Candidates {
		assert.Equal(t, domain.ProviderAWS, r.Provider)
	}
	require.Len(t, plan.Timeline, 4)
	assert.Equal(t, domain.Phase{Name: "Migration", Duration: "1-3 months"}, plan.Timeline[2])
	assert.Len(t, plan.Checklists.Dos, 6)
}

func TestMigrationPlanner_Plan_NormalisesSource(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(domain.PlanRequest{Source: " Azure ", Target: domain.ProviderAWS, Complexity: domain.ComplexitySimple})

	require.NoError(t, err)
	assert.Equal(t, "azure", plan.Request.Source)
	assert.Equal(t, "Lift and Shift", plan.Strategy.Approach)
}

func TestMigrationPlanner_Plan_OnPremiseSeesWholeCatalog(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(domain.PlanRequest{Source: domain.OnPremise, Target: domain.ProviderAzure, Complexity: domain.ComplexitySimple})

	require.NoError(t, err)
	assert.Len(t, plan.Candidates, 33)
}

func TestMigrationPlanner_Plan_ComplexAddsRecommendation(t *testing.T) {
	p := newTestPlanner(t)

	plan, err := p.Plan(domain.PlanRequest{Source: "gcp", Target: domain.ProviderAWS, Complexity: domain.ComplexityComplex})

	require.NoError(t, err)
	assert.Equal(t, "Consider engaging professional services for complex migrations.", plan.Recommendation)
	assert.Equal(t, "3-12 months", plan.Timeline[2].Duration)
}

func TestMigrationPlanner_Plan_ServiceMapping(t *testing.T) {
	p := newTestPlanner(t)

	tests := []struct {
		name       string
		serviceID  string
		target     domain.Provider
		sourceName string
		expected   string
	}{
		{"mapped to azure", "aws-s3", domain.ProviderAzure, "S3", "Azure Blob Storage"},
		{"mapped to gcp", "aws-ec2", domain.ProviderGCP, "EC2", "Google Compute Engine"},
		{"known but unmapped", "aws-sagemaker", domain.ProviderGCP, "SageMaker", domain.ManualAssessment},
		{"unknown id", "aws-unknown", domain.ProviderGCP, "", domain.ManualAssessment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := p.Plan(domain.PlanRequest{
				Source: "aws", Target: tt.target, Complexity: domain.ComplexityMedium, ServiceID: tt.serviceID,
			})
			require.NoError(t, err)
			require.NotNil(t, plan.Mapping)
			assert.Equal(t, tt.serviceID, plan.Mapping.SourceID)
			assert.Equal(t, tt.sourceName, plan.Mapping.SourceName)
			assert.Equal(t, tt.expected, plan.Mapping.Target)
		})
	}
}

func TestMigrationPlanner_Plan_EchoesAreas(t *testing.T) {
	p := newTestPlanner(t)
	areas := []domain.ServiceArea{domain.AreaCompute, domain.AreaDatabase}

	plan, err := p.Plan(domain.PlanRequest{Source: "aws", Target: domain.ProviderAzure, Complexity: domain.ComplexityMedium, Areas: areas})

	require.NoError(t, err)
	assert.Equal(t, areas, plan.Request.Areas)
}

func TestMigrationPlanner_Plan_Validation(t *testing.T) {
	p := newTestPlanner(t)

	tests := []struct {
		name string
		req  domain.PlanRequest
	}{
		{"unknown source", domain.PlanRequest{Source: "oracle", Target: domain.ProviderGCP, Complexity: domain.ComplexitySimple}},
		{"empty source", domain.PlanRequest{Target: domain.ProviderGCP, Complexity: domain.ComplexitySimple}},
		{"unknown target", domain.PlanRequest{Source: "aws", Target: "IBM", Complexity: domain.ComplexitySimple}},
		{"on-premise target", domain.PlanRequest{Source: "aws", Target: domain.Provider(domain.OnPremise), Complexity: domain.ComplexitySimple}},
		{"same provider", domain.PlanRequest{Source: "gcp", Target: domain.ProviderGCP, Complexity: domain.ComplexitySimple}},
		{"unknown complexity", domain.PlanRequest{Source: "aws", Target: domain.ProviderGCP, Complexity: "trivial"}},
		{"unknown area", domain.PlanRequest{Source: "aws", Target: domain.ProviderGCP, Complexity: domain.ComplexitySimple,
			Areas: []domain.ServiceArea{"mainframe"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := p.Plan(tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, plan)
		})
	}
}

func TestMigrationPlanner_Strategy(t *testing.T) {
	p := newTestPlanner(t)

	s, err := p.Strategy(domain.ComplexityComplex)
	require.NoError(t, err)
	assert.Equal(t, "Re-architect", s.Approach)

	_, err = p.Strategy("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
