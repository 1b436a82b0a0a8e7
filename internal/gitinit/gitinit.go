// Package gitinit establishes the project's initial version-control state:
// a repository, staged files, and a single bootstrap commit.
//
// Everything here is advisory. The project is fully usable without the
// commit, so a git hiccup at this stage must not fail a run that has already
// mutated and verified the template.
package gitinit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"setup-project/internal/exec"
	"setup-project/internal/logger"
)

// Outcome reports what the initializer actually did.
type Outcome struct {
	Initialized bool // a new repository was created
	Committed   bool // the bootstrap commit landed
}

// Ensure creates a repository if none exists, stages all files, and attempts
// the single bootstrap commit. An existing repository is a no-op, not an
// error; a failed commit (for example nothing to commit) is a warning.
func Ensure(ctx context.Context, runner exec.CommandRunner, fs afero.Fs, dir, projectName string) Outcome {
	var out Outcome

	gitDir := filepath.Join(dir, ".git")
	exists, err := afero.DirExists(fs, gitDir)
	if err != nil {
		logger.Warn("[WARN] Could not check for %s: %v\n", gitDir, err)
		return out
	}

	if exists {
		logger.Info("[INFO] Git repository already present\n")
	} else {
		if !run(ctx, runner, dir, "init") {
			return out
		}
		out.Initialized = true
		logger.Info("[INFO] Initialized git repository\n")
	}

	if !run(ctx, runner, dir, "add", "-A") {
		return out
	}

	message := fmt.Sprintf("Initial commit: bootstrap %s", projectName)
	if !run(ctx, runner, dir, "commit", "-m", message) {
		logger.Warn("[WARN] Commit skipped (nothing to commit, or commit failed)\n")
		return out
	}

	out.Committed = true
	logger.Info("[INFO] Created initial commit\n")
	return out
}

// run executes one git subcommand, logging a warning on failure.
func run(ctx context.Context, runner exec.CommandRunner, dir string, args ...string) bool {
	res, err := runner.Run(ctx, "git", args, exec.RunOpts{Dir: dir})
	if err != nil {
		logger.Warn("[WARN] git %s failed: %v\n", args[0], err)
		return false
	}
	if res.ExitCode != 0 {
		logger.Warn("[WARN] git %s exited %d\n", args[0], res.ExitCode)
		logger.Debug("[DEBUG] git %s output: %s%s\n", args[0], res.Stdout, res.Stderr)
		return false
	}
	return true
}
