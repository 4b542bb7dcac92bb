package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all entries",
	Long:    `List all entries in the order they were logged, with the total length.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listEntries()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listEntries displays every entry in insertion order
func listEntries() {
	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	printEntries(services.Entry.List())
}
