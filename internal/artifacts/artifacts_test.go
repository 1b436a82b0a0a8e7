package artifacts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-project/internal/config"
)

const testSecret = "deadbeef"

func testProject() config.Project {
	return config.Project{
		Name:              "demo",
		Description:       "a demo project",
		FirebaseProjectID: "demo-prod",
		GitHubUser:        "alice",
	}
}

// seedTemplate writes the full template skeleton into an in-memory fs.
func seedTemplate(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	files := map[string]string{
		ManifestFile: `{"name":"template","version":"0.1.0","description":"template description"}`,
		HostingFile:  `{"projects":{"default":"placeholder"}}`,
		MarkupFile:   "<!doctype html>\n<html>\n<head>\n  <title>Template App</title>\n</head>\n<body></body>\n</html>\n",
		EnvExample:   "APP_NAME=my-app\nSESSION_SECRET=change-me\nFIREBASE_PROJECT_ID=your-firebase-project\n",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func readManifest(t *testing.T, fs afero.Fs) map[string]any {
	t.Helper()
	raw, err := afero.ReadFile(fs, ManifestFile)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestApplyRewritesManifest(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	m := readManifest(t, fs)
	assert.Equal(t, "demo", m["name"])
	assert.Equal(t, "a demo project", m["description"])
	assert.Equal(t, "0.1.0", m["version"], "unrelated fields survive the rewrite")

	repo, ok := m["repository"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "git+https://github.com/alice/demo.git", repo["url"])
	assert.Equal(t, "git", repo["type"])

	bugs, ok := m["bugs"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/alice/demo/issues", bugs["url"])
	assert.Equal(t, "https://github.com/alice/demo#readme", m["homepage"])
}

func TestApplyWithoutGitHubUserLeavesRepoFieldsAlone(t *testing.T) {
	fs := seedTemplate(t)
	p := testProject()
	p.GitHubUser = ""
	require.NoError(t, NewMutator(fs, "").Apply(p, testSecret))

	m := readManifest(t, fs)
	assert.NotContains(t, m, "repository")
	assert.NotContains(t, m, "bugs")
	assert.NotContains(t, m, "homepage")
}

func TestManifestRewriteIsIdempotent(t *testing.T) {
	fs := seedTemplate(t)
	mut := NewMutator(fs, "")
	p := testProject()

	require.NoError(t, mut.Apply(p, testSecret))
	first, err := afero.ReadFile(fs, ManifestFile)
	require.NoError(t, err)

	// .env exists after the first run, so the second Apply only re-runs the
	// pure rewrites.
	require.NoError(t, mut.Apply(p, testSecret))
	second, err := afero.ReadFile(fs, ManifestFile)
	require.NoError(t, err)

	assert.Equal(t, first, second, "two runs with identical configuration must be byte-identical")
}

func TestApplyRewritesHostingConfig(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, HostingFile)
	require.NoError(t, err)
	var hosting map[string]any
	require.NoError(t, json.Unmarshal(raw, &hosting))
	projects := hosting["projects"].(map[string]any)
	assert.Equal(t, "demo-prod", projects["default"])
}

func TestApplyWithoutFirebaseIDLeavesHostingUntouched(t *testing.T) {
	fs := seedTemplate(t)
	before, err := afero.ReadFile(fs, HostingFile)
	require.NoError(t, err)

	p := testProject()
	p.FirebaseProjectID = ""
	require.NoError(t, NewMutator(fs, "").Apply(p, testSecret))

	after, err := afero.ReadFile(fs, HostingFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyRewritesTitle(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, MarkupFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<title>demo</title>")
	assert.NotContains(t, string(raw), "Template App")
	assert.Contains(t, string(raw), "<body></body>", "rest of the document survives")
}

func TestApplyMarkupWithoutTitleIsAdvisory(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, afero.WriteFile(fs, MarkupFile, []byte("<html><body></body></html>"), 0644))

	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, MarkupFile)
	require.NoError(t, err)
	assert.Equal(t, "<html><body></body></html>", string(raw))
}

func TestApplyCreatesEnvFromExample(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, EnvFile)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "APP_NAME=demo\n")
	assert.Contains(t, content, "SESSION_SECRET="+testSecret+"\n")
	assert.Contains(t, content, "FIREBASE_PROJECT_ID=demo-prod\n")
}

func TestApplyNeverOverwritesExistingEnv(t *testing.T) {
	fs := seedTemplate(t)
	custom := "SESSION_SECRET=developer-supplied\n"
	require.NoError(t, afero.WriteFile(fs, EnvFile, []byte(custom), 0600))

	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, EnvFile)
	require.NoError(t, err)
	assert.Equal(t, custom, string(raw), "an existing .env must be left byte-identical")
}

func TestApplyEnvWithoutFirebaseIDKeepsPlaceholder(t *testing.T) {
	fs := seedTemplate(t)
	p := testProject()
	p.FirebaseProjectID = ""
	require.NoError(t, NewMutator(fs, "").Apply(p, testSecret))

	raw, err := afero.ReadFile(fs, EnvFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "FIREBASE_PROJECT_ID="+FirebasePlaceholder)
}

func TestApplySkipsMissingTargets(t *testing.T) {
	// An empty tree: every target missing is advisory, nothing is created.
	fs := afero.NewMemMapFs()
	require.NoError(t, NewMutator(fs, "").Apply(testProject(), testSecret))

	for _, name := range []string{ManifestFile, HostingFile, MarkupFile, EnvFile} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.False(t, exists, "%s must not be created", name)
	}
}

func TestApplyCorruptManifestIsFatal(t *testing.T) {
	fs := seedTemplate(t)
	require.NoError(t, afero.WriteFile(fs, ManifestFile, []byte("{not json"), 0644))

	err := NewMutator(fs, "").Apply(testProject(), testSecret)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "package.json"))
}

func TestApplyInProjectSubdirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proj/package.json", []byte(`{"name":"template"}`), 0644))

	require.NoError(t, NewMutator(fs, "proj").Apply(testProject(), testSecret))

	raw, err := afero.ReadFile(fs, "proj/package.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "demo"`)
}
