package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/storage"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore entries from a backup",
	Long: `Restore the entry log from a backup.

A backup is taken every time the log is cleared. By default, restores from
the most recent backup (1). Optionally specify a backup number (1-3).

Examples:
  actionlog restore       Restore from most recent backup
  actionlog restore 2     Restore from backup #2`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		restoreFromBackup(args)
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

// restoreFromBackup handles the restore command logic
func restoreFromBackup(args []string) {
	backupNum := 1
	if len(args) > 0 {
		num, err := strconv.Atoi(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'\n", args[0])
			deps.Exit(1)
			return
		}
		if num < 1 || num > storage.MaxBackupCount {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Backup number must be between 1 and %d (got %d)\n", storage.MaxBackupCount, num)
			deps.Exit(1)
			return
		}
		backupNum = num
	}

	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	backups, err := services.Entry.ListBackups()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to list backups: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No backups available")
		deps.Exit(1)
		return
	}

	// Display available backups
	_, _ = fmt.Fprintln(deps.Stdout, "Available backups:")
	for _, backup := range backups {
		if backup.Number == 1 {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %d bytes (most recent)\n", backup.Number, backup.Size)
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "  %d: %d bytes\n", backup.Number, backup.Size)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	out, err := services.Entry.RestoreBackup(backupNum)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to restore backup: %v\n", err)
		deps.Exit(1)
		return
	}
	if out.Err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: Restored backup could not be read")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", out.Err)
	}

	count := services.Entry.Count()
	_, _ = fmt.Fprintf(deps.Stdout, "Successfully restored from backup %d (%d %s)\n", backupNum, count, pluralize("entry", count))
}
