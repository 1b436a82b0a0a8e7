package main

import (
	"setup-project/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles flag parsing and execution.
//
// setup-project bootstraps a new project from the static web-app template
// checked out in the current directory:
//   - Validates that node, npm, and git are installed (with an advisory
//     minimum-version check on node)
//   - Collects the project configuration through sequential prompts, or from
//     a YAML answers file for non-interactive runs
//   - Generates a fresh session secret and rewrites the template artifacts:
//     package.json, .firebaserc, public/index.html, and .env (materialized
//     from .env.example, never overwriting an existing .env)
//   - Installs npm dependencies, then runs the lint, typecheck, and test
//     gates; gate failures are reported but never stop the run
//   - Ensures a git repository exists and creates the initial commit
//   - Prints a verification recap and the next-step guidance
//
// Error handling strategy:
//   - Three failures are fatal and exit non-zero: a missing required tool,
//     an invalid configuration, and a failed dependency install
//   - Everything else (failing gates, missing optional template files,
//     nothing to commit) is advisory: logged as a warning, run continues
//   - A fatal abort leaves the filesystem exactly as it was at the failure
//     point; recovery is delegated to git
func main() {
	cmd.Execute()
}
