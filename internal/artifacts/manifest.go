package artifacts

import (
	"encoding/json"
	"fmt"

	"setup-project/internal/config"
)

// rewriteManifest sets the package descriptor's name and description, and,
// when a GitHub username was supplied, the repository, bug-tracker, and
// homepage URLs derived from {username}/{project-name}.
//
// The descriptor is decoded into a map and re-encoded with two-space
// indentation; encoding/json sorts map keys, so the output is deterministic
// and rewriting twice yields byte-identical files.
func rewriteManifest(current []byte, p config.Project) ([]byte, error) {
	var manifest map[string]any
	if err := json.Unmarshal(current, &manifest); err != nil {
		return nil, fmt.Errorf("invalid package.json: %w", err)
	}

	manifest["name"] = p.Name
	manifest["description"] = p.Description

	if p.GitHubUser != "" {
		repo := fmt.Sprintf("https://github.com/%s/%s", p.GitHubUser, p.Name)
		manifest["repository"] = map[string]any{
			"type": "git",
			"url":  "git+" + repo + ".git",
		}
		manifest["bugs"] = map[string]any{
			"url": repo + "/issues",
		}
		manifest["homepage"] = repo + "#readme"
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package.json: %w", err)
	}
	return append(out, '\n'), nil
}
