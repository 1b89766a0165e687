package builtin

import (
	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

// Ensure RegionSource implements the interface.
var _ driven.RegionSource = (*RegionSource)(nil)

// RegionSource serves the static region table. Latencies are simulated
// round-trip figures, not measurements.
type RegionSource struct{}

// NewRegionSource creates the built-in region source.
func NewRegionSource() *RegionSource {
	return &RegionSource{}
}

// Regions returns the region table in provider order.
func (s *RegionSource) Regions() []domain.ProviderRegions {
	return []domain.ProviderRegions{
		{
			Provider: domain.ProviderAWS,
			Regions: []domain.Region{
				{Code: "us-east-1", Name: "US East (N. Virginia)", Location: "Virginia, USA", LatencyMS: 15},
				{Code: "us-west-2", Name: "US West (Oregon)", Location: "Oregon, USA", LatencyMS: 25},
				{Code: "eu-west-1", Name: "Europe (Ireland)", Location: "Dublin, Ireland", LatencyMS: 35},
				{Code: "ap-south-1", Name: "Asia Pacific (Mumbai)", Location: "Mumbai, India", LatencyMS: 45},
				{Code: "ap-southeast-1", Name: "Asia Pacific (Singapore)", Location: "Singapore", LatencyMS: 50},
				{Code: "ap-northeast-1", Name: "Asia Pacific (Tokyo)", Location: "Tokyo, Japan", LatencyMS: 55},
			},
		},
		{
			Provider: domain.ProviderAzure,
			Regions: []domain.Region{
				{Code: "eastus", Name: "East US", Location: "Virginia, USA", LatencyMS: 18},
				{Code: "westus2", Name: "West US 2", Location: "Washington, USA", LatencyMS: 28},
				{Code: "westeurope", Name: "West Europe", Location: "Netherlands", LatencyMS: 32},
				{Code: "centralindia", Name: "Central India", Location: "Pune, India", LatencyMS: 42},
				{Code: "southeastasia", Name: "Southeast Asia", Location: "Singapore", LatencyMS: 48},
				{Code: "japaneast", Name: "Japan East", Location: "Tokyo, Japan", LatencyMS: 52},
			},
		},
		{
			Provider: domain.ProviderGCP,
			Regions: []domain.Region{
				{Code: "us-central1", Name: "US Central1", Location: "Iowa, USA", LatencyMS: 20},
				{Code: "us-west1", Name: "US West1", Location: "Oregon, USA", LatencyMS: 22},
				{Code: "europe-west1", Name: "Europe West1", Location: "Belgium", LatencyMS: 30},
				{Code: "asia-south1", Name: "Asia South1", Location: "Mumbai, India", LatencyMS: 40},
				{Code: "asia-southeast1", Name: "Asia Southeast1", Location: "Singapore", LatencyMS: 46},
				{Code: "asia-northeast1", Name: "Asia Northeast1", Location: "Tokyo, Japan", LatencyMS: 58},
			},
		},
	}
}
