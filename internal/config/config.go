package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/osutil"
)

const (
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// EnvConfigPath overrides the config file location when set
	EnvConfigPath = "ACTIONLOG_CONFIG"
	// DefaultExportPrefix is the artifact name prefix for exports
	DefaultExportPrefix = "actionlog"
)

// Config represents the application configuration
type Config struct {
	// StorageBackend selects the persistence adapter (file or sqlite)
	StorageBackend string `toml:"storage_backend"`
	// DataDir is where persisted state lives. Empty means the app config directory.
	DataDir string `toml:"data_dir"`
	// Timezone defines the timezone for time operations (IANA timezone name, e.g., "America/New_York")
	Timezone string `toml:"timezone"`
	// DisplayLayout is the Go time layout for short timestamps in listings
	DisplayLayout string `toml:"display_layout"`
	// ExportDir is the directory or afs URL that exports are written to
	ExportDir string `toml:"export_dir"`
	// ExportPrefix is the leading part of export file names
	ExportPrefix string `toml:"export_prefix"`
	// ShareURL is the afs URL shares are uploaded to. Empty disables sharing.
	ShareURL string `toml:"share_url"`
	// LengthPresets are the minute deltas offered as length chips
	LengthPresets []int `toml:"length_presets"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - storage_backend: "file" (one JSON file per key in the app directory)
// - timezone: "Local" (use system local timezone)
// - display_layout: "Jan 02 15:04"
// - export_prefix: "actionlog"
func DefaultConfig() Config {
	return Config{
		StorageBackend: "file",
		DataDir:        "",
		Timezone:       "Local",
		DisplayLayout:  entry.DefaultDisplayLayout,
		ExportDir:      "",
		ExportPrefix:   DefaultExportPrefix,
		ShareURL:       "",
		LengthPresets:  []int{-15, -5, 5, 15, 30, 60},
		Theme:          "",
	}
}

// GetConfigPath returns the path to the config file.
// ACTIONLOG_CONFIG wins when set; otherwise the file lives in the
// platform config directory, which is created if it doesn't exist.
func GetConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}

	appDir, err := osutil.AppDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path, returning DefaultConfig when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to access config file %s: %w", path, err)
	}
	return Load(path)
}

// Normalize trims and lower-cases values and fills empty ones with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()

	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	if c.StorageBackend == "" {
		c.StorageBackend = def.StorageBackend
	}
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if strings.TrimSpace(c.DisplayLayout) == "" {
		c.DisplayLayout = def.DisplayLayout
	}
	c.ExportDir = strings.TrimSpace(c.ExportDir)
	c.ExportPrefix = strings.TrimSpace(c.ExportPrefix)
	if c.ExportPrefix == "" {
		c.ExportPrefix = def.ExportPrefix
	}
	c.ShareURL = strings.TrimSpace(c.ShareURL)
	if c.LengthPresets == nil {
		c.LengthPresets = def.LengthPresets
	}
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks the configuration for values that cannot be used
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid storage_backend %q: must be \"file\" or \"sqlite\"", c.StorageBackend)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	if strings.ContainsAny(c.ExportPrefix, `/\`) {
		return fmt.Errorf("invalid export_prefix %q: must not contain path separators", c.ExportPrefix)
	}

	for _, p := range c.LengthPresets {
		if p == 0 {
			return fmt.Errorf("invalid length_presets: 0 is not a length change")
		}
	}

	return nil
}

// Location returns the configured time zone, falling back to time.Local
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// GenerateSampleConfig returns a commented sample config file
func GenerateSampleConfig() string {
	return `# actionlog configuration file
# Place this file at the path shown by "actionlog config".

# Persistence backend: "file" (default) or "sqlite"
# storage_backend = "file"

# Directory for persisted entries. Empty uses the config directory.
# data_dir = ""

# Timezone for entered times (IANA name or "Local")
# Examples: "Local", "America/New_York", "Europe/London", "Asia/Tokyo"
# timezone = "Local"

# Go time layout for short timestamps in listings
# display_layout = "Jan 02 15:04"

# Where exports are written: a directory or a URL such as file:///tmp/exports or mem://localhost/exports
# export_dir = ""

# Export file names are <prefix>_<YYYYMMDD>_<HHMMSS>.<ext>
# export_prefix = "actionlog"

# Share destination URL. When empty or unreachable, share falls back to export.
# share_url = ""

# Length adjustments offered in the form, in minutes
# length_presets = [-15, -5, 5, 15, 30, 60]

# TUI color theme (bubbletint ID, e.g. "dracula", "nord")
# theme = ""
`
}
