package main

import (
	"fmt"
	"os"

	"github.com/xolan/actionlog/cmd"
	"github.com/xolan/actionlog/internal/config"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func main() {
	exitFunc(run())
}

// run resolves the config location and executes the CLI, returning the
// process exit code
func run() int {
	if _, err := config.GetConfigPath(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(os.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(os.Stderr, "Hint: Set %s to the path of your config file\n", config.EnvConfigPath)
		return 1
	}

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
