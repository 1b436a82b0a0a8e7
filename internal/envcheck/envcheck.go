// Package envcheck validates the host environment before anything else runs.
// All checks happen before the first filesystem write, so a failure here
// never leaves anything to clean up.
package envcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"setup-project/internal/exec"
	"setup-project/internal/logger"
)

// ErrMissingDependency is the fatal error class for an absent required tool.
var ErrMissingDependency = errors.New("missing dependency")

// MinNodeVersion is the advisory minimum version for the node runtime.
// Older runtimes produce a warning but do not block the run.
const MinNodeVersion = "20.0.0"

// Tool describes one required external tool.
type Tool struct {
	Name    string // executable name, also the command we probe with --version
	Purpose string // shown in the failure message
}

// Required lists the tools the initializer cannot run without.
var Required = []Tool{
	{Name: "node", Purpose: "language runtime"},
	{Name: "npm", Purpose: "package manager"},
	{Name: "git", Purpose: "version-control client"},
}

// Validate probes every required tool with `--version` and fails with
// ErrMissingDependency on the first one that cannot be executed. It then
// performs the advisory node version check.
func Validate(ctx context.Context, runner exec.CommandRunner, dir string) error {
	var nodeVersion string

	for _, tool := range Required {
		res, err := runner.Run(ctx, tool.Name, []string{"--version"}, exec.RunOpts{Dir: dir})
		if err != nil || res.ExitCode != 0 {
			return fmt.Errorf("%w: %s (%s) is not installed or not on PATH", ErrMissingDependency, tool.Name, tool.Purpose)
		}

		version := strings.TrimSpace(res.Stdout)
		logger.Debug("[DEBUG] Found %s: %s\n", tool.Name, version)

		if tool.Name == "node" {
			nodeVersion = version
		}
	}

	checkNodeVersion(nodeVersion)
	logger.Info("[INFO] Environment OK: node, npm, git are available\n")
	return nil
}

// checkNodeVersion warns when the runtime is older than MinNodeVersion.
// Unparseable version output is ignored: the presence check already passed
// and the version gate is advisory.
func checkNodeVersion(raw string) {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		logger.Debug("[DEBUG] Could not parse node version %q: %v\n", raw, err)
		return
	}

	min := semver.MustParse(MinNodeVersion)
	if v.LessThan(min) {
		logger.Warn("[WARN] node %s is older than the recommended minimum %s; some template tooling may misbehave\n", v, min)
	}
}
