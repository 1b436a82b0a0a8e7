package logger

import (
	"github.com/fatih/color" // Colored console output for the operator transcript
)

// The initializer talks to the operator through a per-step transcript:
// one green line per completed step, magenta for advisory warnings, red for
// the first (and only) fatal cause. These are package-level printf-style
// functions colored per level.

// Info logs informational and success messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs advisory warnings in bright magenta color.
// Advisory failures (gate failures, skipped files, no-op commits) land here
// and never stop the run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs fatal errors in red color.
// A fatal cause is always the last actionable line before the process exits.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It defaults to a no-op and is reassigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger, enabling or disabling debug output.
// When disabled, Debug is a no-op function so call sites need no guard.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
