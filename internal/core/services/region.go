package services

import (
	"strings"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driving"
)

// Ensure RegionService implements the interface.
var _ driving.RegionService = (*RegionService)(nil)

// RegionService exposes the static region latency table.
type RegionService struct {
	source driven.RegionSource
}

// NewRegionService creates a region service backed by source.
func NewRegionService(source driven.RegionSource) *RegionService {
	return &RegionService{source: source}
}

// Regions returns the regions of provider, or of every provider for
// domain.Wildcard. Provider names match case-insensitively.
func (s *RegionService) Regions(provider string) []domain.ProviderRegions {
	all := s.source.Regions()
	if provider == "" || strings.EqualFold(provider, domain.Wildcard) {
		return all
	}

	want := domain.ParseProvider(provider)
	out := []domain.ProviderRegions{}
	for _, pr := range all {
		if pr.Provider == want {
			out = append(out, pr)
		}
	}
	return out
}

// Overview summarises the region table.
func (s *RegionService) Overview() domain.RegionOverview {
	overview := domain.RegionOverview{MajorAreas: domain.MajorAreas}
	for _, pr := range s.source.Regions() {
		for _, r := range pr.Regions {
			if overview.TotalRegions == 0 || r.LatencyMS < overview.BestLatencyMS {
				overview.BestLatencyMS = r.LatencyMS
			}
			overview.TotalRegions++
		}
	}
	return overview
}
