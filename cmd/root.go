package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/store"
)

var (
	configPathFlag string
	ephemeralFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "actionlog",
	Short: "A minimal action log for recording what you did and when",
	Long: `actionlog records actions with a start time, a stop time and an optional
comment, keeps them locally and exports them as CSV or XLSX.

Usage:
  actionlog                                     Show entries (or a count when the panel is hidden)
  actionlog add --action 'Coffee' --length 15   Log a new entry starting now
  actionlog add                                 Log a new entry using an interactive form
  actionlog list                                List all entries
  actionlog export [--format xlsx] [--to DIR]   Export entries
  actionlog share [--to URL]                    Share entries, falling back to export
  actionlog clear                               Delete all entries (with confirmation)
  actionlog toggle                              Show or hide entries by default
  actionlog restore [n]                         Restore entries from backup (default: most recent)
  actionlog tui                                 Launch the interactive form

Timestamps are entered as YYYY-MM-DDTHH:MM (e.g., 2024-01-01T10:00).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if tuiFlag {
			runTUI()
			return
		}
		showSummary()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "keep entries in memory only for this run")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"actionlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	startDiagnostics()
	return rootCmd.Execute()
}

// showSummary lists entries when the details preference is on and
// otherwise prints how many entries are recorded
func showSummary() {
	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	if services.Entry.ShowDetails() {
		printEntries(services.Entry.List())
		return
	}

	count := services.Entry.Count()
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s recorded\n", count, pluralize("entry", count))
	_, _ = fmt.Fprintln(deps.Stdout, "Hint: Use 'actionlog list' to see them, or 'actionlog toggle' to always show them")
}

// loadServices opens the configured services and reports a failed restore.
// Returns nil (after calling Exit) when the services cannot be opened.
func loadServices() *service.Services {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open action log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check your config file with 'actionlog config'")
		deps.Exit(1)
		return nil
	}

	if out := services.Entry.RestoreOutcome(); out.Err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Saved entries could not be loaded; starting with an empty log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", out.Err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use 'actionlog restore' to recover from a backup")
	}
	return services
}

func closeServices(services *service.Services) {
	if err := services.Close(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Failed to close storage: %v\n", err)
	}
}

// reportOutcome warns on stderr when a change was kept in memory only
func reportOutcome(out store.Outcome) {
	if out.Err == nil {
		return
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Warning: Change could not be saved")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", out.Err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the data directory exists and is writable")
}

// printEntries displays the rendered entry collection with a total
func printEntries(result service.ListResult) {
	if len(result.Rows) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries recorded")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Entries:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	// Calculate width for right-aligned indices
	maxIndexWidth := len(fmt.Sprintf("%d", len(result.Rows)))

	for _, row := range result.Rows {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s - %s  %s (%s)",
			maxIndexWidth,
			row.Index,
			row.ShortStart,
			row.ShortStop,
			row.Action,
			formatDuration(row.Minutes))
		if row.Comment != "" {
			_, _ = fmt.Fprintf(deps.Stdout, " - %s", row.Comment)
		}
		_, _ = fmt.Fprintln(deps.Stdout)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", formatDuration(result.Total))
}

// formatDuration formats minutes as a human-readable string
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// pluralize returns the plural form of an English noun for count
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
