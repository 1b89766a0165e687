package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/adapters/driving/tui"
	"github.com/custodia-labs/cloudcompass/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for cloudcompass.

The TUI lets you explore the service catalog, compare providers side by
side, browse region latency, draft migration plans and edit settings.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Tab      - Next category
  Space    - Toggle selection
  Esc      - Back
  q        - Quit (from the menu)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() *tui.Ports {
	ports := tui.NewPorts(catalogService, comparisonService, regionService, plannerService)
	ports.Settings = settingsService
	return ports
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireCatalog(); err != nil {
		return err
	}

	ports := tuiPorts()
	if watchSettings != nil {
		changes, err := watchSettings(cmd.Context())
		if err != nil {
			logger.Warn("Settings will not refresh while the TUI runs: %v", err)
		} else {
			ports.SettingsChanges = changes
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
