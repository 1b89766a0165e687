package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var (
	regionsProvider string
	regionsJSON     bool
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List provider regions and typical latency",
	Long: `Lists the regions of each provider with a typical round-trip latency.

Latency tiers: Excellent below 30ms, Good below 60ms, Fair otherwise.
Latencies are reference values, not live measurements.`,
	Args: cobra.NoArgs,
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().StringVarP(&regionsProvider, "provider", "p", domain.Wildcard, "provider (AWS, Azure, GCP, all)")
	regionsCmd.Flags().BoolVar(&regionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(regionsCmd)
}

type regionsOutput struct {
	Providers []domain.ProviderRegions `json:"providers"`
	Overview  domain.RegionOverview    `json:"overview"`
}

func runRegions(cmd *cobra.Command, _ []string) error {
	if regionService == nil {
		return errors.New("region service not configured")
	}

	providers := regionService.Regions(regionsProvider)
	overview := regionService.Overview()

	if wantJSON(regionsJSON) {
		return printJSON(cmd, regionsOutput{Providers: providers, Overview: overview})
	}

	if len(providers) == 0 {
		cmd.Printf("No regions for provider: %s\n", regionsProvider)
		return nil
	}

	for _, pr := range providers {
		cmd.Printf("%s (%s)\n", pr.Provider, pr.Provider.Description())
		rows := make([][]string, len(pr.Regions))
		for i, r := range pr.Regions {
			rows[i] = []string{r.Code, r.Name, r.Location, fmt.Sprintf("%dms", r.LatencyMS), string(r.Tier())}
		}
		cmd.Println(renderTable([]string{"Code", "Name", "Location", "Latency", "Tier"}, rows))
		cmd.Println()
	}

	cmd.Printf("%d regions, best latency %dms, %d major areas\n",
		overview.TotalRegions, overview.BestLatencyMS, overview.MajorAreas)
	return nil
}
