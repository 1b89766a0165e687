package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

type statsOutput struct {
	Catalog domain.CatalogStats    `json:"catalog"`
	Regions *domain.RegionOverview `json:"regions,omitempty"`
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	stats := catalogService.Stats()
	out := statsOutput{Catalog: stats}
	if regionService != nil {
		overview := regionService.Overview()
		out.Regions = &overview
	}

	if wantJSON(statsJSON) {
		return printJSON(cmd, out)
	}

	cmd.Println("Catalog")
	cmd.Println("=======")
	cmd.Printf("  Services:        %d\n", stats.Total)
	cmd.Printf("  Popular:         %d\n", stats.Popular)
	cmd.Printf("  Free tier:       %d\n", stats.FreeTier)
	cmd.Printf("  Service regions: %d\n", stats.TotalRegions)
	cmd.Println()

	cmd.Println("[By provider]")
	for _, c := range stats.ByProvider {
		cmd.Printf("  %-6s %d\n", c.Provider, c.Count)
	}
	cmd.Println()

	cmd.Println("[By category]")
	for _, c := range stats.ByCategory {
		cmd.Printf("  %-11s %d\n", c.Category, c.Count)
	}

	if out.Regions != nil {
		cmd.Println()
		cmd.Println("[Regions]")
		cmd.Printf("  Total:        %d\n", out.Regions.TotalRegions)
		cmd.Printf("  Best latency: %dms\n", out.Regions.BestLatencyMS)
		cmd.Printf("  Major areas:  %d\n", out.Regions.MajorAreas)
	}
	return nil
}
