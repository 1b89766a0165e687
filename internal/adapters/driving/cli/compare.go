package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var (
	compareSelect []string
	compareJSON   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [category]",
	Short: "Compare providers within a category",
	Long: `Lines up the AWS, Azure and GCP services of one category.

Rows pair services by their position in the catalog, not by function.
Use --select with up to 3 service ids to compare those services in detail.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVarP(&compareSelect, "select", "s", nil,
		fmt.Sprintf("service ids to compare in detail (max %d)", domain.MaxComparison))
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(compareCmd)
}

// compareOutput is the JSON shape of the compare command.
type compareOutput struct {
	Category domain.Category        `json:"category"`
	Rows     []compareRowOutput     `json:"rows"`
	Counts   []domain.ProviderCount `json:"counts"`
	Selected []domain.ServiceRecord `json:"selected,omitempty"`
}

type compareRowOutput struct {
	AWS      string `json:"aws,omitempty"`
	Azure    string `json:"azure,omitempty"`
	GCP      string `json:"gcp,omitempty"`
	Complete bool   `json:"complete"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	if comparisonService == nil {
		return errors.New("comparison service not configured")
	}

	comparison := comparisonService.CompareCategory(domain.ParseCategory(args[0]))

	selection := domain.NewSelection(compareSelect...)
	var selected []domain.ServiceRecord
	if len(compareSelect) > 0 {
		selected = comparisonService.SelectedRecords(selection)
	}

	if wantJSON(compareJSON) {
		out := compareOutput{
			Category: comparison.Category,
			Rows:     make([]compareRowOutput, len(comparison.Rows)),
			Counts:   comparison.Counts,
			Selected: selected,
		}
		for i, row := range comparison.Rows {
			out.Rows[i] = compareRowOutput{
				AWS:      rowID(row.AWS),
				Azure:    rowID(row.Azure),
				GCP:      rowID(row.GCP),
				Complete: row.Complete(),
			}
		}
		return printJSON(cmd, out)
	}

	counts := make([]string, len(comparison.Counts))
	for i, c := range comparison.Counts {
		counts[i] = fmt.Sprintf("%s %d", c.Provider, c.Count)
	}
	cmd.Printf("%s - %s (%s)\n\n", comparison.Category, comparison.Category.ServiceType(), strings.Join(counts, " | "))

	if len(comparison.Rows) == 0 {
		cmd.Println("No services in this category.")
		if !comparison.Category.IsValid() {
			cmd.Printf("Known categories: %s\n", strings.Join(categorySlugs(), ", "))
		}
	} else {
		rows := make([][]string, len(comparison.Rows))
		for i, row := range comparison.Rows {
			rows[i] = []string{rowLabel(row.AWS), rowLabel(row.Azure), rowLabel(row.GCP)}
		}
		cmd.Println(renderTable([]string{"AWS", "Azure", "GCP"}, rows))
	}

	if len(compareSelect) > 0 {
		if distinct(compareSelect) > selection.Len() {
			cmd.Printf("\nOnly %d services can be compared; extra selections were ignored.\n", domain.MaxComparison)
		}
		if catalogService != nil {
			for _, id := range selection.IDs() {
				if _, err := catalogService.Get(id); err != nil {
					cmd.Printf("Unknown service: %s\n", id)
				}
			}
		}
		if len(selected) > 0 {
			cmd.Println()
			cmd.Println(selectionTable(selected))
		}
	}
	return nil
}

// distinct counts the different ids in ids.
func distinct(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}

func categorySlugs() []string {
	slugs := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		slugs = append(slugs, c.Slug())
	}
	return slugs
}

func selectionTable(records []domain.ServiceRecord) string {
	headers := make([]string, 0, len(records)+1)
	headers = append(headers, "")
	for i := range records {
		headers = append(headers, records[i].Name)
	}

	attribute := func(name string, value func(r domain.ServiceRecord) string) []string {
		row := make([]string, 0, len(records)+1)
		row = append(row, name)
		for i := range records {
			row = append(row, value(records[i]))
		}
		return row
	}

	rows := [][]string{
		attribute("Provider", func(r domain.ServiceRecord) string { return r.Provider.String() }),
		attribute("Category", func(r domain.ServiceRecord) string { return r.Category.String() }),
		attribute("Pricing", func(r domain.ServiceRecord) string { return r.Pricing }),
		attribute("Free tier", func(r domain.ServiceRecord) string { return yesNo(r.FreeTier) }),
		attribute("Regions", func(r domain.ServiceRecord) string { return strconv.Itoa(len(r.Regions)) }),
		attribute("Features", func(r domain.ServiceRecord) string { return strings.Join(r.TopFeatures(3), "\n") }),
	}
	return renderTable(headers, rows)
}

func rowID(r *domain.ServiceRecord) string {
	if r == nil {
		return ""
	}
	return r.ID
}

func rowLabel(r *domain.ServiceRecord) string {
	if r == nil {
		return placeholder
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.ID)
}
