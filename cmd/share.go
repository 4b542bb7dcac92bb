package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/export"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share entries as CSV, falling back to export",
	Long: `Upload the CSV document to the configured share_url (or --to).

When no share target is configured or the upload fails, the document is
exported to the export location instead.

Examples:
  actionlog share
  actionlog share --to file:///mnt/team/inbox`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		to, _ := cmd.Flags().GetString("to")
		shareEntries(cmd.Context(), to)
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)

	shareCmd.Flags().String("to", "", "share target URL (default: share_url)")
}

// shareEntries shares the CSV document and reports which path was taken
func shareEntries(ctx context.Context, to string) {
	if ctx == nil {
		ctx = context.Background()
	}

	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	res := services.Export.ShareTo(ctx, to, deps.Now())
	switch {
	case errors.Is(res.Err, export.ErrNothingToExport):
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to export.")
	case res.Err != nil:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to share or export entries")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", res.Err)
		if res.Reason != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Share: %v\n", res.Reason)
		}
		deps.Exit(1)
	case res.Shared:
		_, _ = fmt.Fprintf(deps.Stdout, "Shared to %s\n", res.URL)
	default:
		_, _ = fmt.Fprintf(deps.Stdout, "Sharing unavailable (%v)\n", res.Reason)
		_, _ = fmt.Fprintf(deps.Stdout, "Exported to %s\n", res.URL)
	}
}
