package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Show or hide entries by default",
	Long: `Flip whether running 'actionlog' without a command lists the entries.
The same preference controls the entries panel in the TUI.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		toggleDetails()
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func toggleDetails() {
	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	show, out := services.Entry.ToggleDetails()
	reportOutcome(out)

	if show {
		_, _ = fmt.Fprintln(deps.Stdout, "Entries: shown")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Entries: hidden")
	}
}
