// Package bootstrap drives one initialization run from start to finish:
//
//	validate environment → collect configuration → generate secret and
//	rewrite artifacts → install and verify → commit → report
//
// Every step is a hard prerequisite for the next. A fatal failure aborts with
// the filesystem exactly as it was at that point; there is no rollback beyond
// what git itself offers.
package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"setup-project/internal/artifacts"
	"setup-project/internal/config"
	"setup-project/internal/envcheck"
	"setup-project/internal/exec"
	"setup-project/internal/gitinit"
	"setup-project/internal/logger"
	"setup-project/internal/pipeline"
	"setup-project/internal/report"
	"setup-project/internal/secret"
)

// Options carries the run's ambient state explicitly: filesystem, command
// runner, project directory, and the prompt streams. Tests inject an
// in-memory filesystem, a scripted runner, and canned input.
type Options struct {
	Fs     afero.Fs
	Runner exec.CommandRunner
	Dir    string // project directory, "" means the current directory
	In     io.Reader
	Out    io.Writer

	// AnswersFile, when set, supplies the configuration from a YAML file
	// instead of interactive prompts.
	AnswersFile string
}

// Run executes one full initialization. It returns nil once the run reaches
// the final report, even when advisory steps failed along the way; the error
// is non-nil only for the fatal classes (missing dependency, invalid
// configuration, failed dependency install).
func Run(ctx context.Context, opts Options) error {
	if err := envcheck.Validate(ctx, opts.Runner, opts.Dir); err != nil {
		return err
	}

	project, err := collect(opts)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Configuration accepted for %q\n", project.Name)

	sec, err := secret.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate secret: %w", err)
	}

	if err := artifacts.NewMutator(opts.Fs, opts.Dir).Apply(project, sec); err != nil {
		return err
	}

	results, err := pipeline.Run(ctx, opts.Runner, opts.Dir)
	if err != nil {
		return err
	}

	gitinit.Ensure(ctx, opts.Runner, opts.Fs, opts.Dir, project.Name)

	printReport(opts.Out, project, results)
	return nil
}

// collect builds the configuration record from the answers file when one was
// given, otherwise from sequential prompts. Either way the record comes back
// fully validated or not at all.
func collect(opts Options) (config.Project, error) {
	if opts.AnswersFile != "" {
		return config.LoadAnswers(opts.Fs, opts.AnswersFile)
	}
	return config.NewPrompter(opts.In, opts.Out).Collect()
}

// printReport writes the gate recap and the next-step guidance.
func printReport(w io.Writer, project config.Project, results []pipeline.Result) {
	fmt.Fprintf(w, "\n%s is ready.\n\nVerification:\n", project.Name)
	for _, line := range report.GateSummary(results) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	fmt.Fprintln(w, "\nNext steps:")
	for i, step := range report.NextSteps(project) {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
