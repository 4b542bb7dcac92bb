package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/service"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for actionlog.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

By default, actionlog works without any configuration file. All settings have defaults:
  - storage_backend: file
  - timezone: Local (system timezone)
  - display_layout: Jan 02 15:04
  - export_prefix: actionlog

Configuration file location:
  ~/.config/actionlog/config.toml          Linux
  %APPDATA%\actionlog\config.toml          Windows
The ACTIONLOG_CONFIG environment variable or --config overrides it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd writes a commented sample config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// resolveConfig returns the config service for the active config path.
// Returns nil (after calling Exit) on failure.
func resolveConfig() *service.ConfigService {
	configPath := configPathFlag
	if configPath == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
			deps.Exit(1)
			return nil
		}
		configPath = p
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Valid storage_backend values: file, sqlite")
		_, _ = fmt.Fprintln(deps.Stderr, "Valid timezone examples: Local, America/New_York, Europe/London, Asia/Tokyo")
		deps.Exit(1)
		return nil
	}

	return service.NewConfigService(configPath, cfg)
}

// showConfig displays the current effective configuration
func showConfig() {
	svc := resolveConfig()
	if svc == nil {
		return
	}
	cfg := svc.Get()
	fileExists := svc.Exists()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for actionlog")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", svc.GetPath())
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Storage:         %s\n", cfg.StorageBackend)
	_, _ = fmt.Fprintf(deps.Stdout, "Data Dir:        %s\n", orDefault(cfg.DataDir, "(config directory)"))
	_, _ = fmt.Fprintf(deps.Stdout, "Timezone:        %s\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "Display Layout:  %s\n", cfg.DisplayLayout)
	_, _ = fmt.Fprintf(deps.Stdout, "Export Dir:      %s\n", orDefault(cfg.ExportDir, "(current directory)"))
	_, _ = fmt.Fprintf(deps.Stdout, "Export Prefix:   %s\n", cfg.ExportPrefix)
	_, _ = fmt.Fprintf(deps.Stdout, "Share URL:       %s\n", orDefault(cfg.ShareURL, "(none, share exports locally)"))
	_, _ = fmt.Fprintf(deps.Stdout, "Length Presets:  %v\n", cfg.LengthPresets)
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s\n", orDefault(cfg.Theme, "(default)"))
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'actionlog config init' to create a sample config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample config to the active config path
func initConfig() {
	svc := resolveConfig()
	if svc == nil {
		return
	}

	if err := svc.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		if svc.Exists() {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Edit the existing file instead")
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", svc.GetPath())
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
