package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/gops/agent"

	"github.com/xolan/actionlog/internal/logging"
)

// EnvGops enables the gops diagnostics agent when set to 1 or true
const EnvGops = "ACTIONLOG_GOPS"

func gopsEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvGops))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// startDiagnostics starts the gops agent so a running TUI session can be
// inspected with the gops tool
func startDiagnostics() {
	if !gopsEnabled() {
		return
	}
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: gops agent: %v\n", err)
		return
	}
	logging.Debugf("gops agent listening, pid=%d", os.Getpid())
}
