// Package logging provides debug diagnostics gated by the ACTIONLOG_DEBUG
// environment variable. Failures the application recovers from silently
// (persistence, share fallback) are reported here.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// EnvDebug is the environment variable that enables debug output
const EnvDebug = "ACTIONLOG_DEBUG"

// Output is where debug messages are written. Tests can replace it.
var Output io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via ACTIONLOG_DEBUG
func DebugEnabled() bool {
	v := strings.TrimSpace(os.Getenv(EnvDebug))
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

// Debugf prints a formatted debug message only if debug mode is enabled.
// A trailing newline is added when missing.
func Debugf(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprint(Output, "debug: "+msg)
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...any) {
	if DebugEnabled() {
		_, _ = fmt.Fprintln(Output, append([]any{"debug:"}, args...)...)
	}
}
