package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllProviders(t *testing.T) {
	providers := AllProviders()

	require.Len(t, providers, 3)
	assert.Equal(t, []Provider{ProviderAWS, ProviderAzure, ProviderGCP}, providers)
	for _, p := range providers {
		assert.True(t, p.IsValid(), "provider %s should be valid", p)
	}
}

func TestProvider_IsValid(t *testing.T) {
	assert.False(t, Provider("aws").IsValid(), "provider match is exact")
	assert.False(t, Provider("").IsValid())
	assert.False(t, Provider(Wildcard).IsValid())
}

func TestProvider_KeyAndDescription(t *testing.T) {
	assert.Equal(t, "aws", ProviderAWS.Key())
	assert.Equal(t, "azure", ProviderAzure.Key())
	assert.Equal(t, "Google Cloud Platform", ProviderGCP.Description())
	assert.Equal(t, "Unknown", Provider("IBM").Description())
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input    string
		expected Provider
	}{
		{"AWS", ProviderAWS},
		{"aws", ProviderAWS},
		{"azure", ProviderAzure},
		{"GcP", ProviderGCP},
		{"oracle", Provider("oracle")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseProvider(tt.input))
		})
	}
}

func TestAllCategories(t *testing.T) {
	categories := AllCategories()

	require.Len(t, categories, 10)
	assert.Equal(t, CategoryCompute, categories[0])
	assert.Equal(t, CategoryAnalytics, categories[9])
	for _, c := range categories {
		assert.True(t, c.IsValid())
	}
	assert.False(t, Category("compute").IsValid())
}

func TestCategory_ServiceType(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryCompute, "Virtual Machines"},
		{CategoryStorage, "Data Storage"},
		{CategoryDatabase, "Data Management"},
		{CategoryServerless, "Event-Driven"},
		{CategoryAIML, "Machine Learning"},
		{CategorySecurity, "Access Control"},
		{CategoryNetworking, "Network Infrastructure"},
		{CategoryDevOps, "Automation"},
		{CategoryContainers, "Container Management"},
		{CategoryAnalytics, "Data Analytics"},
		{Category("Quantum"), "Cloud Service"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.ServiceType())
		})
	}
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryAIML, ParseCategory("ai/ml"))
	assert.Equal(t, CategoryAIML, ParseCategory("AI-ML"))
	assert.Equal(t, CategoryDevOps, ParseCategory("devops"))
	assert.Equal(t, Category("Mainframe"), ParseCategory("Mainframe"))
}

func TestCategory_Slug(t *testing.T) {
	assert.Equal(t, "ai-ml", CategoryAIML.Slug())
	assert.Equal(t, "devops", CategoryDevOps.Slug())

	for _, c := range AllCategories() {
		assert.Equal(t, c, ParseCategory(c.Slug()), c)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		latency  int
		expected LatencyTier
	}{
		{0, TierExcellent},
		{29, TierExcellent},
		{30, TierGood},
		{59, TierGood},
		{60, TierFair},
		{200, TierFair},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.latency), "latency %d", tt.latency)
	}

	assert.Equal(t, TierGood, Region{LatencyMS: 45}.Tier())
}

func TestComplexity(t *testing.T) {
	assert.Len(t, AllComplexities(), 3)
	assert.True(t, ComplexityComplex.IsValid())
	assert.False(t, Complexity("extreme").IsValid())
	assert.Equal(t, "Simple (Few dependencies)", ComplexitySimple.Description())
	assert.Equal(t, "Unknown", Complexity("").Description())
}

func TestServiceArea(t *testing.T) {
	assert.Len(t, AllServiceAreas(), 6)
	assert.True(t, AreaNetworking.IsValid())
	assert.False(t, ServiceArea("mainframe").IsValid())
	assert.Equal(t, "Compute/VMs", AreaCompute.Label())
	assert.Equal(t, "Storage", AreaStorage.Label())
	assert.Equal(t, "", ServiceArea("").Label())
}
