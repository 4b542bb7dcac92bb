package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/service"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new entry",
	Long: `Log a new entry with a start time, stop time, action and optional comment.

Missing times default to now. When only one of --start or --stop is given,
the other takes the same value. A stop before the start is swapped.
--length sets the stop time relative to the start when --stop is not given.

Without --action on an interactive terminal, a form asks for the fields.

Examples:
  actionlog add --action 'Coffee'
  actionlog add --action 'Standup' --length 15
  actionlog add --start 2024-01-01T10:00 --stop 2024-01-01T11:30 --action 'Review' --comment 'PR 42'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		in := service.AddInput{}
		in.Start, _ = cmd.Flags().GetString("start")
		in.Stop, _ = cmd.Flags().GetString("stop")
		in.Action, _ = cmd.Flags().GetString("action")
		in.Comment, _ = cmd.Flags().GetString("comment")
		in.Length, _ = cmd.Flags().GetInt("length")
		addEntry(in)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("start", "", "start time (YYYY-MM-DDTHH:MM, default now)")
	addCmd.Flags().String("stop", "", "stop time (YYYY-MM-DDTHH:MM, default start)")
	addCmd.Flags().IntP("length", "l", 0, "length in minutes from start, used when --stop is empty")
	addCmd.Flags().StringP("action", "a", "", "what you did")
	addCmd.Flags().StringP("comment", "c", "", "optional comment")
}

// addEntry normalizes input and appends it to the log
func addEntry(in service.AddInput) {
	if strings.TrimSpace(in.Action) == "" && deps.IsInteractive() {
		if err := fillFromForm(&in); err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Entry form was not completed")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return
		}
	}

	services := loadServices()
	if services == nil {
		return
	}
	defer closeServices(services)

	res, err := services.Entry.Create(in, deps.Now())
	if err != nil {
		printCreateError(err)
		deps.Exit(1)
		return
	}
	reportOutcome(res.Outcome)

	layout := services.Config.Get().DisplayLayout
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s (%s) %s - %s\n",
		res.Entry.DisplayAction(),
		formatDuration(res.Entry.Minutes),
		entry.FormatShort(res.Entry.Start, layout),
		entry.FormatShort(res.Entry.Stop, layout))
}

func printCreateError(err error) {
	switch {
	case errors.Is(err, entry.ErrMissingAction):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Action cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass --action 'what you did'")
	case errors.Is(err, entry.ErrInvalidTimestamp):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid time")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use format YYYY-MM-DDTHH:MM (e.g., 2024-01-01T10:00)")
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to add entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
}

// fillFromForm asks for the entry fields interactively
func fillFromForm(in *service.AddInput) error {
	length := ""
	if in.Length != 0 {
		length = strconv.Itoa(in.Length)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Action").
				Placeholder("☕ Coffee").
				Value(&in.Action).
				Validate(validateAction),
			huh.NewInput().
				Title("Start (blank for now)").
				Placeholder(entry.Layout).
				Value(&in.Start).
				Validate(validateOptionalTimestamp),
			huh.NewInput().
				Title("Stop (blank to use length or start)").
				Placeholder(entry.Layout).
				Value(&in.Stop).
				Validate(validateOptionalTimestamp),
			huh.NewInput().
				Title("Length in minutes (optional)").
				Placeholder("15").
				Value(&length).
				Validate(validateOptionalMinutes),
			huh.NewText().
				Title("Comment").
				Value(&in.Comment),
		),
	).WithShowHelp(false)

	if err := deps.RunForm(form); err != nil {
		return err
	}

	if strings.TrimSpace(length) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(length))
		if err != nil {
			return err
		}
		in.Length = n
	}
	return nil
}

func validateAction(s string) error {
	if strings.TrimSpace(s) == "" {
		return entry.ErrMissingAction
	}
	return nil
}

func validateOptionalTimestamp(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := entry.ParseTimestamp(s, deps.Now().Location())
	return err
}

func validateOptionalMinutes(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a whole number of minutes")
	}
	return nil
}
