package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the catalog source, output format and the defaults
used by the explorer and the migration planner.

Use subcommands to change a single key or run the interactive wizard.`,
	Annotations: withoutCatalog,
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short:       "Show current settings",
	Annotations: withoutCatalog,
	RunE:        runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting and save it to the config file.

Run 'cloudcompass settings keys' for the list of keys.`,
	Args:        cobra.ExactArgs(2),
	Annotations: withoutCatalog,
	RunE:        runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short:       "List setting keys",
	Args:        cobra.NoArgs,
	Annotations: withoutCatalog,
	RunE:        runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:        `Run an interactive wizard to configure all settings step by step.`,
	Annotations: withoutCatalog,
	RunE:        runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Source: %s\n", settings.Catalog.Source.Description())
	if settings.Catalog.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	}
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format)
	cmd.Println()

	cmd.Println("[Explorer]")
	cmd.Printf("  Default category: %s\n", settings.Explorer.Category)
	cmd.Printf("  Default provider: %s\n", settings.Explorer.Provider)
	cmd.Println()

	cmd.Println("[Planner]")
	cmd.Printf("  Default source: %s\n", settings.Planner.Source)
	cmd.Printf("  Default target: %s\n", settings.Planner.Target)
	cmd.Printf("  Default complexity: %s\n", settings.Planner.Complexity.Description())
	cmd.Println()

	// Validation
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'cloudcompass settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	values := map[string]string{
		"catalog.source":             defaults.Catalog.Source.String(),
		"catalog.path":               "",
		"output.format":              defaults.Output.Format.String(),
		"explorer.default_category":  defaults.Explorer.Category,
		"explorer.default_provider":  defaults.Explorer.Provider,
		"planner.default_source":     defaults.Planner.Source,
		"planner.default_target":     defaults.Planner.Target.String(),
		"planner.default_complexity": defaults.Planner.Complexity.String(),
	}

	for _, key := range settingsService.Keys() {
		cmd.Printf("  %-28s default: %s\n", key, orPlaceholder(values[key]))
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("cloudcompass Settings Wizard")
	cmd.Println("============================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	// Step 1: Catalog source
	cmd.Println("Step 1: Select Catalog Source")
	cmd.Println("-----------------------------")
	kinds := []domain.CatalogSourceKind{domain.CatalogSourceBuiltin, domain.CatalogSourceFile, domain.CatalogSourceSQLite}
	for i, k := range kinds {
		cmd.Printf("  %d. %s\n", i+1, k.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	kind := kinds[parseChoice(readLine(reader), len(kinds), 1)-1]

	path := ""
	if kind.RequiresPath() {
		cmd.Printf("Enter catalog file path [%s]: ", settings.Catalog.Path)
		path = readLine(reader)
		if path == "" {
			path = settings.Catalog.Path
		}
		if path == "" {
			return errors.New("a catalog file path is required")
		}
	}
	if err := settingsService.SetCatalogSource(kind, path); err != nil {
		return fmt.Errorf("failed to set catalog source: %w", err)
	}
	cmd.Printf("Catalog source set to: %s\n\n", kind.Description())

	// Step 2: Output format
	cmd.Println("Step 2: Select Output Format")
	cmd.Println("----------------------------")
	formats := []domain.OutputFormat{domain.OutputTable, domain.OutputJSON}
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f)
	}
	cmd.Print("\nEnter choice [1]: ")
	format := formats[parseChoice(readLine(reader), len(formats), 1)-1]
	if err := settingsService.Set("output.format", format.String()); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}
	cmd.Println()

	// Step 3: Planner defaults
	cmd.Println("Step 3: Planner Defaults")
	cmd.Println("------------------------")
	complexities := domain.AllComplexities()
	for i, c := range complexities {
		cmd.Printf("  %d. %s\n", i+1, c.Description())
	}
	cmd.Print("\nDefault complexity [2]: ")
	complexity := complexities[parseChoice(readLine(reader), len(complexities), 2)-1]
	if err := settingsService.Set("planner.default_complexity", complexity.String()); err != nil {
		return fmt.Errorf("failed to set planner complexity: %w", err)
	}
	cmd.Println()

	// Final validation
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

// Helper functions.

func readLine(reader *bufio.Reader) string {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
