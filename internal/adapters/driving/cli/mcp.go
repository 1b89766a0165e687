package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/mcp"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Expose the catalog to AI assistants over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server backed by the loaded catalog.

Tools:
  search_services    filter services by term, category and provider
  get_service        one service by id
  compare_category   a category aligned by provider
  list_regions       regions and latency tiers
  plan_migration     strategy, advice and checklists for a migration
  catalog_stats      counts by provider and category

Resources:
  cloudcompass://categories
  cloudcompass://services/{id}

Without --port the server speaks JSON-RPC on stdio, which is what desktop
assistants launch. With --port it serves streamable HTTP instead, limited to
--rate requests per second, with Prometheus metrics at /metrics.

Examples:
  cloudcompass mcp serve
  cloudcompass mcp serve --port 8090 --rate 50

Assistant configuration:
  {
    "mcpServers": {
      "cloudcompass": {
        "command": "/path/to/cloudcompass",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond, "HTTP requests per second")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Catalog:    catalogService,
		Comparison: comparisonService,
		Regions:    regionService,
		Planner:    plannerService,
	})
	if err != nil {
		return err
	}
	logger.SetJSON(true)

	if port <= 0 {
		return server.Run(cmd.Context())
	}

	limit := mcp.DefaultRateLimit
	limit.RequestsPerSecond = rps
	if burst := int(2 * rps); burst > limit.BurstSize {
		limit.BurstSize = burst
	}
	server.WithRateLimit(limit)

	addr := fmt.Sprintf(":%d", port)
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
