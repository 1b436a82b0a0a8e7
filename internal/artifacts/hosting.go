package artifacts

import (
	"encoding/json"
	"fmt"

	"setup-project/internal/config"
)

// rewriteHosting points the hosting config's default deployment target at the
// supplied Firebase project id. When no id was collected the file is returned
// unchanged, byte for byte.
func rewriteHosting(current []byte, p config.Project) ([]byte, error) {
	if p.FirebaseProjectID == "" {
		return current, nil
	}

	var hosting map[string]any
	if err := json.Unmarshal(current, &hosting); err != nil {
		return nil, fmt.Errorf("invalid .firebaserc: %w", err)
	}

	projects, ok := hosting["projects"].(map[string]any)
	if !ok {
		projects = map[string]any{}
	}
	projects["default"] = p.FirebaseProjectID
	hosting["projects"] = projects

	out, err := json.MarshalIndent(hosting, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal .firebaserc: %w", err)
	}
	return append(out, '\n'), nil
}
