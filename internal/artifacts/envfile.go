package artifacts

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"setup-project/internal/config"
	"setup-project/internal/logger"
)

// Placeholder tokens in the checked-in .env.example.
const (
	SecretPlaceholder   = "change-me"             // SESSION_SECRET value
	AppNamePlaceholder  = "my-app"                // APP_NAME value
	FirebasePlaceholder = "your-firebase-project" // FIREBASE_PROJECT_ID value
)

// ensureEnvFile materializes .env from .env.example, substituting the
// placeholder tokens with the generated secret, the project name, and, when
// supplied, the Firebase project id.
//
// An existing .env is never touched: it may already hold developer-supplied
// secrets, and re-running the initializer must not destroy them.
func (m *Mutator) ensureEnvFile(p config.Project, secret string) error {
	envPath := m.path(EnvFile)

	exists, err := afero.Exists(m.Fs, envPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", envPath, err)
	}
	if exists {
		logger.Info("[INFO] %s already exists, leaving it unchanged\n", EnvFile)
		return nil
	}

	examplePath := m.path(EnvExample)
	exampleExists, err := afero.Exists(m.Fs, examplePath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", examplePath, err)
	}
	if !exampleExists {
		logger.Warn("[WARN] %s not found, skipping environment file\n", EnvExample)
		return nil
	}

	raw, err := afero.ReadFile(m.Fs, examplePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", examplePath, err)
	}

	content := string(raw)
	content = strings.ReplaceAll(content, SecretPlaceholder, secret)
	content = strings.ReplaceAll(content, AppNamePlaceholder, p.Name)
	if p.FirebaseProjectID != "" {
		content = strings.ReplaceAll(content, FirebasePlaceholder, p.FirebaseProjectID)
	}

	if err := afero.WriteFile(m.Fs, envPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envPath, err)
	}

	logger.Info("[INFO] Created %s from %s\n", EnvFile, EnvExample)
	return nil
}
