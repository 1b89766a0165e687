package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import, export and inspect catalogs",
	Long: `Move service catalogs between files and the local database.

Files may be TOML, YAML or JSON with a top-level "services" list. An imported
catalog is used when catalog.source is set to sqlite.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short:       "Import a catalog file into the local database",
	Args:        cobra.ExactArgs(1),
	Annotations: withoutCatalog,
	RunE:        runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the loaded catalog to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogExport,
}

var catalogHistoryJSON bool

var catalogHistoryCmd = &cobra.Command{
	Use:   "history",
	Short:       "List past imports",
	Args:        cobra.NoArgs,
	Annotations: withoutCatalog,
	RunE:        runCatalogHistory,
}

func init() {
	catalogHistoryCmd.Flags().BoolVar(&catalogHistoryJSON, "json", false, "output as JSON")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogHistoryCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if catalogAdmin == nil {
		return errors.New("catalog admin not configured")
	}

	imp, err := catalogAdmin.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	cmd.Printf("Imported %d services from %s\n", imp.Count, imp.Origin)
	cmd.Printf("Import ID: %s\n", imp.ID)
	cmd.Println("Run 'cloudcompass settings set catalog.source sqlite' to use it.")
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	if catalogAdmin == nil {
		return errors.New("catalog admin not configured")
	}

	n, err := catalogAdmin.Export(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	cmd.Printf("Exported %d services to %s\n", n, args[0])
	return nil
}

func runCatalogHistory(cmd *cobra.Command, _ []string) error {
	if catalogAdmin == nil {
		return errors.New("catalog admin not configured")
	}

	imports, err := catalogAdmin.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list imports: %w", err)
	}

	if wantJSON(catalogHistoryJSON) {
		return printJSON(cmd, imports)
	}

	if len(imports) == 0 {
		cmd.Println("No catalog imports yet.")
		return nil
	}

	rows := make([][]string, len(imports))
	for i, imp := range imports {
		rows[i] = []string{
			imp.ImportedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", imp.Count),
			truncate(imp.Origin, descriptionWidth(60)),
			imp.ID,
		}
	}
	cmd.Println(renderTable([]string{"Imported", "Services", "Origin", "ID"}, rows))
	return nil
}
