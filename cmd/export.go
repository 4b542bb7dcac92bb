package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/export"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to CSV or XLSX",
	Long: `Export all entries to a file named <prefix>_<YYYYMMDD>_<HHMMSS>.<ext>.

The file is written to the configured export_dir (default: the current
directory). --to overrides the location and accepts a directory or a URL
such as file:///tmp/exports.

Available formats:
  csv     Header start,stop,length_minutes,action,comment (default)
  xlsx    Same columns as a single-sheet workbook

Examples:
  actionlog export                      Export as CSV
  actionlog export --format xlsx        Export as XLSX
  actionlog export --to ~/Documents     Export into a directory
  actionlog export --stdout > log.csv   Print the CSV document`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		to, _ := cmd.Flags().GetString("to")
		stdout, _ := cmd.Flags().GetBool("stdout")
		exportEntries(cmd.Context(), format, to, stdout)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "csv", "export format (csv, xlsx)")
	exportCmd.Flags().String("to", "", "export directory or URL (default: export_dir)")
	exportCmd.Flags().Bool("stdout", false, "write the document to standard output instead of a file")
}

// exportEntries renders the log and writes it to a file, a URL or stdout
func exportEntries(ctx context.Context, formatName, to string, toStdout bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := export.ParseFormat(formatName)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	if toStdout {
		doc, err := services.Export.Document(format, deps.Now())
		if err != nil {
			printExportError(err)
			return
		}
		_, _ = deps.Stdout.Write(doc.Data)
		return
	}

	u, err := services.Export.ExportTo(ctx, format, to, deps.Now())
	if err != nil {
		printExportError(err)
		return
	}

	count := services.Entry.Count()
	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", count, pluralize("entry", count), u)
}

func printExportError(err error) {
	if errors.Is(err, export.ErrNothingToExport) {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries to export.")
		return
	}
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to export entries")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the export location exists and is writable")
	deps.Exit(1)
}
