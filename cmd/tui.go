package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tuiFlag bool

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for actionlog.

Views available:
  - Log: The entry form with length chips, export, share and delete all
  - Entries: Browse all entries and read their comments
  - Config: View configuration and pick a theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-3: Jump to specific view
  - e: Edit the form, Enter or Ctrl+S to save
  - ←/→ and Space: Pick and apply a length
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().BoolVar(&tuiFlag, "tui", false, "Launch interactive terminal UI")
}

// runTUI opens the services and runs the TUI application
func runTUI() {
	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	if err := deps.RunTUI(services); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run terminal UI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
	}
}
