package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearYesFlag bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Long: `Delete all entries from the log.

A confirmation prompt will be shown unless --yes is specified.
The previous log is kept as backup 1 and can be brought back with
'actionlog restore'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		clearEntries()
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// clearEntries deletes every entry after confirmation
func clearEntries() {
	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	count := services.Entry.Count()
	cleared, out := services.Entry.ClearAll(func() bool {
		return clearYesFlag || promptClearConfirmation()
	})

	switch {
	case count == 0:
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to clear")
	case !cleared:
		_, _ = fmt.Fprintln(deps.Stdout, "Clear cancelled")
	default:
		reportOutcome(out)
		_, _ = fmt.Fprintf(deps.Stdout, "Deleted %d %s\n", count, pluralize("entry", count))
	}
}

// promptClearConfirmation asks the user to confirm deleting everything
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptClearConfirmation() bool {
	_, _ = fmt.Fprint(deps.Stdout, "Delete ALL entries? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
