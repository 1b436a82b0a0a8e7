// Package report turns a finished run into operator guidance. Everything
// here is a pure function of its inputs; printing is left to the caller.
package report

import (
	"fmt"

	"setup-project/internal/config"
	"setup-project/internal/pipeline"
)

// NextSteps returns the ordered follow-up instructions for the operator.
// It branches only on which optional fields were supplied.
func NextSteps(p config.Project) []string {
	steps := []string{
		"Review .env and fill in any values the template could not know.",
		"npm run dev  # start the local dev server",
	}

	if p.FirebaseProjectID != "" {
		steps = append(steps, fmt.Sprintf("firebase deploy  # deploys to %s", p.FirebaseProjectID))
	} else {
		steps = append(steps, "Create a Firebase project, then: firebase init hosting")
	}

	if p.GitHubUser != "" {
		steps = append(steps,
			fmt.Sprintf("git remote add origin git@github.com:%s/%s.git", p.GitHubUser, p.Name),
			"git push -u origin main",
		)
	} else {
		steps = append(steps, "Create a GitHub repository and add it as origin to publish.")
	}

	return steps
}

// GateSummary returns one recap line per pipeline step, so every advisory
// failure is visible in a single block at the end of the transcript.
func GateSummary(results []pipeline.Result) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		if !r.Passed {
			status = "FAILED"
		}
		lines = append(lines, fmt.Sprintf("%-9s %s", r.Name, status))
	}
	return lines
}
