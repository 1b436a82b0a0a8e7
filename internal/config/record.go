// Package config builds the immutable configuration record for one
// initialization run. The record is constructed exactly once, validated as a
// whole, and never mutated afterwards: downstream steps either receive a
// fully valid record or never run at all.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidConfiguration is the fatal error class for a rejected
// configuration. It aborts the run before any file is touched.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// nameRe is the contract for project names: lowercase, starts with a letter,
// then letters, digits, or hyphens. npm package names and Firebase site names
// both accept this subset.
var nameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Project is the validated configuration record for a run.
type Project struct {
	// Name is the project name. Required; must match ^[a-z][a-z0-9-]*$.
	Name string

	// Description is a free-form one-liner. May be empty.
	Description string

	// FirebaseProjectID selects the default Firebase deployment target.
	// Optional; when empty, the hosting config is left untouched.
	FirebaseProjectID string

	// GitHubUser is the GitHub account the project will be pushed to.
	// Optional; when empty, no repository URLs are written to the manifest.
	GitHubUser string
}

// Answers holds the raw field values before validation, in the same order the
// interactive prompts ask for them. It is the input shape shared by every
// collection source (terminal, answers file).
type Answers struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	FirebaseProjectID string `yaml:"firebase_project_id"`
	GitHubUser        string `yaml:"github_user"`
}

// Build validates raw answers and returns the configuration record.
// The first invalid field fails the whole build; there is no partial record
// and no retry.
func Build(raw Answers) (Project, error) {
	if raw.Name == "" {
		return Project{}, fmt.Errorf("%w: project name is required", ErrInvalidConfiguration)
	}
	if !nameRe.MatchString(raw.Name) {
		return Project{}, fmt.Errorf("%w: project name %q must match %s", ErrInvalidConfiguration, raw.Name, nameRe.String())
	}

	return Project{
		Name:              raw.Name,
		Description:       raw.Description,
		FirebaseProjectID: raw.FirebaseProjectID,
		GitHubUser:        raw.GitHubUser,
	}, nil
}
