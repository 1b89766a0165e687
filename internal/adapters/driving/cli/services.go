package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var (
	servicesCategory string
	servicesProvider string
	servicesPopular  bool
	servicesFreeTier bool
	servicesJSON     bool
	servicesGroup    bool
)

var servicesCmd = &cobra.Command{
	Use:     "services [term]",
	Aliases: []string{"search", "ls"},
	Short:   "Search and list cloud services",
	Long: `Lists catalog services matching an optional search term.

The term is matched case-insensitively against service names and
descriptions. Category and provider narrow the results; "all" disables
either filter. Without flags the explorer defaults from settings apply.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServices,
}

func init() {
	servicesCmd.Flags().StringVarP(&servicesCategory, "category", "c", "", "category filter (e.g. Compute, AI/ML, all)")
	servicesCmd.Flags().StringVarP(&servicesProvider, "provider", "p", "", "provider filter (AWS, Azure, GCP, all)")
	servicesCmd.Flags().BoolVar(&servicesPopular, "popular", false, "only popular services")
	servicesCmd.Flags().BoolVar(&servicesFreeTier, "free-tier", false, "only services with a free tier")
	servicesCmd.Flags().BoolVar(&servicesJSON, "json", false, "output results as JSON")
	servicesCmd.Flags().BoolVarP(&servicesGroup, "group", "g", false, "group results by category")
	rootCmd.AddCommand(servicesCmd)
}

// servicesOutput is the JSON shape of the services command.
type servicesOutput struct {
	Filters domain.ExplorerFilters `json:"filters"`
	Count   int                    `json:"count"`
	Results []domain.ServiceRecord `json:"results"`
}

func runServices(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	filters := explorerFilters()
	if len(args) == 1 {
		filters.Term = args[0]
	}

	projection := catalogService.Explore(filters)
	results := projection.Results

	if wantJSON(servicesJSON) {
		return printJSON(cmd, servicesOutput{
			Filters: projection.Filters,
			Count:   projection.Count,
			Results: results,
		})
	}

	if len(results) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	if servicesGroup {
		for _, group := range projection.Groups {
			cmd.Printf("%s (%d) - %s\n", group.Category, len(group.Services), group.Category.ServiceType())
			cmd.Println(servicesTable(group.Services))
			cmd.Println()
		}
	} else {
		cmd.Println(servicesTable(results))
	}
	cmd.Printf("Found %s\n", plural(projection.Count, "service"))
	return nil
}

// explorerFilters combines the flags with the explorer defaults from settings.
func explorerFilters() domain.ExplorerFilters {
	filters := domain.DefaultExplorerFilters()
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			filters.Category = settings.Explorer.Category
			filters.Provider = settings.Explorer.Provider
		}
	}
	if servicesCategory != "" {
		filters.Category = servicesCategory
	}
	if servicesProvider != "" {
		filters.Provider = servicesProvider
	}
	filters.Popular = servicesPopular
	filters.FreeTier = servicesFreeTier
	return filters
}

// plural formats n with noun, adding an "s" unless n is 1.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func servicesTable(records []domain.ServiceRecord) string {
	width := descriptionWidth(80)
	rows := make([][]string, len(records))
	for i := range records {
		r := records[i]
		rows[i] = []string{
			r.ID,
			r.Name,
			r.Provider.String(),
			r.Category.String(),
			yesNo(r.FreeTier),
			truncate(r.Description, width),
		}
	}
	return renderTable([]string{"ID", "Name", "Provider", "Category", "Free Tier", "Description"}, rows)
}

var serviceJSON bool

var serviceCmd = &cobra.Command{
	Use:   "service [id]",
	Short: "Show details of one service",
	Args:  cobra.ExactArgs(1),
	RunE:  runService,
}

func init() {
	serviceCmd.Flags().BoolVar(&serviceJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(serviceCmd)
}

func runService(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(); err != nil {
		return err
	}

	record, err := catalogService.Get(args[0])
	if err != nil {
		return fmt.Errorf("service %q: %w", args[0], err)
	}

	if wantJSON(serviceJSON) {
		return printJSON(cmd, record)
	}

	cmd.Printf("%s (%s)\n", record.Name, record.ID)
	cmd.Println(strings.Repeat("=", len(record.Name)+len(record.ID)+3))
	cmd.Println()
	cmd.Printf("  Provider:    %s\n", record.Provider.Description())
	cmd.Printf("  Category:    %s (%s)\n", record.Category, record.Category.ServiceType())
	cmd.Printf("  Pricing:     %s\n", record.Pricing)
	cmd.Printf("  Free tier:   %s\n", yesNo(record.FreeTier))
	cmd.Printf("  Popular:     %s\n", yesNo(record.Popular))
	if record.DocumentationURL != "" {
		cmd.Printf("  Docs:        %s\n", record.DocumentationURL)
	}
	cmd.Println()
	cmd.Printf("  %s\n", record.Description)
	cmd.Println()

	printList(cmd, "Features", record.Features)
	if len(record.Regions) > 0 {
		cmd.Printf("Regions: %s\n", strings.Join(record.Regions, ", "))
	}
	if len(record.Tags) > 0 {
		cmd.Printf("Tags: %s\n", strings.Join(record.Tags, ", "))
	}
	return nil
}
