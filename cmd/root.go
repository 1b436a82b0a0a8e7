package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"setup-project/internal/bootstrap"
	"setup-project/internal/exec"
	"setup-project/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// answersFile optionally supplies the prompt answers from a YAML file,
// making the run non-interactive (useful for CI and tests).
var answersFile string

// projectDir is the directory holding the template checkout.
// It defaults to the current working directory.
var projectDir string

// rootCmd is the single entry point: running `setup-project` performs the
// whole initialization, prompting for configuration along the way.
var rootCmd = &cobra.Command{
	Use:   "setup-project",
	Short: "Bootstrap a new project from the web-app template",

	// Initialize the logger before the run, based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap.Run(cmd.Context(), bootstrap.Options{
			Fs:          afero.NewOsFs(),
			Runner:      exec.NewRealRunner(),
			Dir:         projectDir,
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
			AnswersFile: answersFile,
		})
	},

	// A fatal run error is not a usage error; the transcript already names
	// the cause, so keep cobra's own reporting quiet.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute registers flags and runs the command.
// Exit code 0 means the run reached the final report (advisory failures
// included); any fatal abort exits 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&answersFile, "answers", "", "YAML file with prompt answers (non-interactive run)")
	rootCmd.Flags().StringVar(&projectDir, "dir", "", "Project directory (defaults to the current directory)")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
