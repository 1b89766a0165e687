package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/api"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "HTTP API commands",
}

var apiServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON HTTP API",
	Long: `Serve the catalog as a read-only JSON API.

Routes:
  GET  /api/v1/services?term=&category=&provider=&popular=&free_tier=&group=
  GET  /api/v1/services/:id
  GET  /api/v1/categories
  GET  /api/v1/categories/:category/comparison
  GET  /api/v1/regions?provider=
  GET  /api/v1/stats
  POST /api/v1/plans
  GET  /healthz
  GET  /metrics`,
	Args: cobra.NoArgs,
	RunE: runAPIServe,
}

func init() {
	apiServeCmd.Flags().IntP("port", "p", 8080, "HTTP port")
	apiServeCmd.Flags().Float64("rate", api.DefaultConfig().RequestsPerSecond, "requests per second per client (0 = unlimited)")
	apiCmd.AddCommand(apiServeCmd)
	rootCmd.AddCommand(apiCmd)
}

func runAPIServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}

	cfg := api.DefaultConfig()
	cfg.RequestsPerSecond = rps

	server, err := api.NewServer(&api.Ports{
		Catalog:    catalogService,
		Comparison: comparisonService,
		Regions:    regionService,
		Planner:    plannerService,
	}, cfg)
	if err != nil {
		return err
	}
	logger.SetJSON(true)

	addr := fmt.Sprintf(":%d", port)
	fmt.Fprintf(cmd.OutOrStdout(), "API listening on http://localhost%s/api/v1\n", addr)
	return server.Run(cmd.Context(), addr)
}
