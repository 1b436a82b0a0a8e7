// Package pipeline installs the template's dependencies and runs the quality
// gates against the freshly mutated project.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"setup-project/internal/exec"
	"setup-project/internal/logger"
)

// ErrDependencyInstall is the fatal error class for a failed dependency
// install. No gate runs after it.
var ErrDependencyInstall = errors.New("dependency install failed")

// Step is one pipeline invocation. Fatal steps abort the run on failure;
// advisory steps are recorded and reported but never stop the next step.
type Step struct {
	Name  string
	Cmd   string
	Args  []string
	Fatal bool
}

// Steps is the fixed pipeline: install first (fatal), then the advisory
// gates in order. Each gate runs regardless of the previous gate's outcome
// so the operator gets every diagnostic in a single pass.
var Steps = []Step{
	{Name: "install", Cmd: "npm", Args: []string{"install"}, Fatal: true},
	{Name: "lint", Cmd: "npm", Args: []string{"run", "lint"}},
	{Name: "typecheck", Cmd: "npm", Args: []string{"run", "typecheck"}},
	{Name: "test", Cmd: "npm", Args: []string{"test"}},
}

// Result records the outcome of one pipeline step.
type Result struct {
	Name   string
	Passed bool
}

// Run executes the pipeline in dir. It returns the per-step results and a
// fatal error only when the install step fails.
func Run(ctx context.Context, runner exec.CommandRunner, dir string) ([]Result, error) {
	results := make([]Result, 0, len(Steps))

	for _, step := range Steps {
		logger.Debug("[DEBUG] Running %s: %s %s\n", step.Name, step.Cmd, strings.Join(step.Args, " "))

		res, err := runner.Run(ctx, step.Cmd, step.Args, exec.RunOpts{Dir: dir})
		passed := err == nil && res.ExitCode == 0

		if !passed && step.Fatal {
			if err != nil {
				return results, fmt.Errorf("%w: %s %s: %v", ErrDependencyInstall, step.Cmd, strings.Join(step.Args, " "), err)
			}
			return results, fmt.Errorf("%w: %s %s exited %d\n%s", ErrDependencyInstall, step.Cmd, strings.Join(step.Args, " "), res.ExitCode, tail(res.Stderr))
		}

		results = append(results, Result{Name: step.Name, Passed: passed})

		if passed {
			logger.Info("[INFO] %s passed\n", step.Name)
		} else {
			logger.Warn("[WARN] %s failed, continuing\n", step.Name)
		}
	}

	return results, nil
}

// tail returns the last few lines of command output for the error message,
// enough to point at the cause without flooding the transcript.
func tail(out string) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > 10 {
		lines = lines[len(lines)-10:]
	}
	return strings.Join(lines, "\n")
}
