package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Prompter collects answers through sequential blocking prompts.
// Reader and Writer are injectable so tests can drive the prompts without a
// terminal.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: bufio.NewReader(in), Out: out}
}

// Collect prompts for each field in fixed order and returns the validated
// record. A single invalid entry terminates the run; no retry is offered.
func (p *Prompter) Collect() (Project, error) {
	var raw Answers
	var err error

	if raw.Name, err = p.ask("Project name: "); err != nil {
		return Project{}, err
	}
	if raw.Description, err = p.ask("Description (optional): "); err != nil {
		return Project{}, err
	}
	if raw.FirebaseProjectID, err = p.ask("Firebase project id (optional): "); err != nil {
		return Project{}, err
	}
	if raw.GitHubUser, err = p.ask("GitHub username (optional): "); err != nil {
		return Project{}, err
	}

	return Build(raw)
}

// ask prints one prompt and reads one trimmed line of input.
// EOF with a partial line is accepted so piped input without a trailing
// newline still works.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.Out, prompt)

	line, err := p.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// LoadAnswers reads the answers file (YAML) at path and returns the validated
// record. This is the non-interactive counterpart of Collect: same fields,
// same validation, same all-or-nothing abort semantics.
func LoadAnswers(fs afero.Fs, path string) (Project, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var ans Answers
	if err := yaml.Unmarshal(raw, &ans); err != nil {
		return Project{}, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	return Build(ans)
}
