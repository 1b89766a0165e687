package builtin

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

func TestCatalogSource_Load(t *testing.T) {
	source := NewCatalogSource()

	records, err := source.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "builtin", source.Name())
	require.Len(t, records, 33)
	assert.Equal(t, "aws-ec2", records[0].ID)
	assert.Equal(t, "gcp-bigquery", records[len(records)-1].ID)
}

func TestCatalogSource_RecordsAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Records() {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true

		assert.True(t, r.Provider.IsValid(), "%s provider", r.ID)
		assert.True(t, r.Category.IsValid(), "%s category", r.ID)
		assert.True(t, strings.HasPrefix(r.ID, r.Provider.Key()+"-"), "%s id prefix", r.ID)
		assert.NotEmpty(t, r.Name, r.ID)
		assert.NotEmpty(t, r.Features, r.ID)
		assert.NotEmpty(t, r.Regions, r.ID)
		assert.True(t, r.Popular, r.ID)
	}
}

func TestCatalogSource_FreeTierExceptions(t *testing.T) {
	var paid []string
	for _, r := range Records() {
		if !r.FreeTier {
			paid = append(paid, r.ID)
		}
	}

	assert.Equal(t, []string{"aws-sagemaker", "aws-redshift", "azure-synapse"}, paid)
}

func TestCatalogSource_LoadReturnsFreshRecords(t *testing.T) {
	first := Records()
	first[0].Features[0] = "mutated"

	assert.NotEqual(t, "mutated", Records()[0].Features[0])
}

func TestCatalogSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalogSource().Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegionSource_Regions(t *testing.T) {
	regions := NewRegionSource().Regions()

	require.Len(t, regions, 3)
	assert.Equal(t, domain.ProviderAWS, regions[0].Provider)
	assert.Equal(t, domain.ProviderAzure, regions[1].Provider)
	assert.Equal(t, domain.ProviderGCP, regions[2].Provider)
	for _, pr := range regions {
		assert.Len(t, pr.Regions, 6, pr.Provider)
	}
	assert.Equal(t, "us-east-1", regions[0].Regions[0].Code)
	assert.Equal(t, 15, regions[0].Regions[0].LatencyMS)
	assert.Equal(t, 58, regions[2].Regions[5].LatencyMS)
}

func TestGuidanceSource_Strategies(t *testing.T) {
	g, err := NewGuidanceSource()
	require.NoError(t, err)

	tests := []struct {
		complexity domain.Complexity
		duration   string
		approach   string
		risk       string
	}{
		{domain.ComplexitySimple, "2-4 weeks", "Lift and Shift", "Low"},
		{domain.ComplexityMedium, "1-3 months", "Re-platform", "Medium"},
		{domain.ComplexityComplex, "3-12 months", "Re-architect", "High"},
	}

	for _, tt := range tests {
		t.Run(string(tt.complexity), func(t *testing.T) {
			s, ok := g.Strategy(tt.complexity)
			require.True(t, ok)
			assert.Equal(t, tt.complexity, s.Complexity)
			assert.Equal(t, tt.duration, s.Duration)
			assert.Equal(t, tt.approach, s.Approach)
			assert.Equal(t, tt.risk, s.RiskLevel)
			assert.Len(t, s.Tools, 3)
		})
	}

	_, ok := g.Strategy(domain.Complexity("extreme"))
	assert.False(t, ok)
}

func TestGuidanceSource_Advice(t *testing.T) {
	g := MustGuidanceSource()

	for _, p := range domain.AllProviders() {
		advice, ok := g.Advice(p)
		require.True(t, ok, p)
		assert.Equal(t, p, advice.Provider)
		assert.Len(t, advice.Strengths, 3)
		assert.Len(t, advice.Considerations, 2)
	}

	gcp, _ := g.Advice(domain.ProviderGCP)
	assert.Contains(t, gcp.Strengths, "Strong AI/ML services")

	_, ok := g.Advice(domain.Provider("IBM"))
	assert.False(t, ok)
}

func TestGuidanceSource_Equivalent(t *testing.T) {
	g := MustGuidanceSource()

	name, ok := g.Equivalent("aws-s3", domain.ProviderAzure)
	assert.True(t, ok)
	assert.Equal(t, "Azure Blob Storage", name)

	name, ok = g.Equivalent("aws-lambda", domain.ProviderGCP)
	assert.True(t, ok)
	assert.Equal(t, "Google Cloud Functions", name)

	_, ok = g.Equivalent("aws-s3", domain.ProviderAWS)
	assert.False(t, ok)

	_, ok = g.Equivalent("gcp-gke", domain.ProviderAzure)
	assert.False(t, ok)
}

func TestGuidanceSource_Checklists(t *testing.T) {
	c := MustGuidanceSource().Checklists()

	assert.Len(t, c.PreMigration, 5)
	assert.Len(t, c.Dos, 6)
	assert.Len(t, c.Donts, 6)
	require.Len(t, c.CostTips, 3)
	assert.Equal(t, "Instance Optimization", c.CostTips[0].Title)
	assert.Equal(t, "Storage & Data", c.CostTips[1].Title)
	assert.Equal(t, "Automation & Scaling", c.CostTips[2].Title)
	for _, group := range c.CostTips {
		assert.Len(t, group.Tips, 4, group.Title)
	}
	assert.Equal(t, "Don't migrate everything at once", c.Donts[0])
}
