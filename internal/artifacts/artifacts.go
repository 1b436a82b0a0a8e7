// Package artifacts applies the collected configuration and the generated
// secret to the fixed set of template files. Each target is handled
// independently: a present file is rewritten in place, a missing one is
// reported and skipped, and a missing target is never created (except for
// .env, which is materialized from its checked-in example).
package artifacts

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"setup-project/internal/config"
	"setup-project/internal/logger"
)

// Template file names, relative to the project directory.
const (
	ManifestFile = "package.json"
	HostingFile  = ".firebaserc"
	MarkupFile   = "public/index.html"
	EnvFile      = ".env"
	EnvExample   = ".env.example"
)

// Mutator rewrites template artifacts inside one project directory.
// All file access goes through the injected afero filesystem so the whole
// package is testable against an in-memory tree.
type Mutator struct {
	Fs  afero.Fs
	Dir string
}

// NewMutator creates a Mutator for the project rooted at dir.
func NewMutator(fs afero.Fs, dir string) *Mutator {
	return &Mutator{Fs: fs, Dir: dir}
}

// Apply runs every rewrite in a fixed order: manifest, hosting config,
// markup entry point, environment file. Missing targets are advisory;
// a parse or write failure on a present target is fatal.
func (m *Mutator) Apply(p config.Project, secret string) error {
	if err := m.rewrite(ManifestFile, func(current []byte) ([]byte, error) {
		return rewriteManifest(current, p)
	}); err != nil {
		return err
	}

	if err := m.rewrite(HostingFile, func(current []byte) ([]byte, error) {
		return rewriteHosting(current, p)
	}); err != nil {
		return err
	}

	if err := m.rewrite(MarkupFile, func(current []byte) ([]byte, error) {
		return rewriteMarkup(current, p)
	}); err != nil {
		return err
	}

	return m.ensureEnvFile(p, secret)
}

// rewrite applies one pure rewrite rule to a single target file.
// The new content is always rederived from the current bytes plus the
// configuration, so running it twice produces identical output.
func (m *Mutator) rewrite(name string, rule func(current []byte) ([]byte, error)) error {
	path := m.path(name)

	exists, err := afero.Exists(m.Fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		logger.Warn("[WARN] %s not found, skipping\n", name)
		return nil
	}

	current, err := afero.ReadFile(m.Fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	next, err := rule(current)
	if err != nil {
		return fmt.Errorf("failed to rewrite %s: %w", name, err)
	}

	if err := writeFileAtomic(m.Fs, path, next, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	logger.Info("[INFO] Updated %s\n", name)
	return nil
}

func (m *Mutator) path(name string) string {
	return filepath.Join(m.Dir, name)
}
