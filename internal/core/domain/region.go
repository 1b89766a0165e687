package domain

// Region is a provider region with its simulated round-trip latency.
type Region struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	LatencyMS int    `json:"latency_ms"`
}

// Tier returns the latency classification for this region.
func (r Region) Tier() LatencyTier {
	return TierFor(r.LatencyMS)
}

// ProviderRegions lists the regions of one provider.
type ProviderRegions struct {
	Provider Provider `json:"provider"`
	Regions  []Region `json:"regions"`
}

// LatencyTier classifies a latency figure.
type LatencyTier string

// Latency tiers.
const (
	TierExcellent LatencyTier = "Excellent"
	TierGood      LatencyTier = "Good"
	TierFair      LatencyTier = "Fair"
)

// TierFor returns Excellent below 30ms, Good below 60ms, Fair otherwise.
func TierFor(latencyMS int) LatencyTier {
	switch {
	case latencyMS < 30:
		return TierExcellent
	case latencyMS < 60:
		return TierGood
	default:
		return TierFair
	}
}

// MajorAreas is the number of geographic areas covered by the region table
// (US East, US West, Europe, India, Singapore, Japan).
const MajorAreas = 6

// RegionOverview summarises the region table.
type RegionOverview struct {
	TotalRegions  int `json:"total_regions"`
	BestLatencyMS int `json:"best_latency_ms"`
	MajorAreas    int `json:"major_areas"`
}
