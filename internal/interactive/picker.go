// Package interactive provides terminal prompts for choosing a results file
package interactive

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCanceled is returned when the user aborts the prompt
var ErrCanceled = errors.New("selection canceled")

// Prompter asks a single question. The default implementation wraps survey.
type Prompter func(prompt survey.Prompt, response interface{}) error

// AskOne is the survey-backed Prompter
func AskOne(prompt survey.Prompt, response interface{}) error {
	return survey.AskOne(prompt, response)
}

// PickFile shows the base names of paths and returns the chosen path.
// paths are expected newest first; the first entry is the default.
func PickFile(ask Prompter, paths []string) (string, error) {
	choices := make([]string, 0, len(paths))
	byChoice := make(map[string]string, len(paths))

	for _, path := range paths {
		name := filepath.Base(path)
		choices = append(choices, name)
		byChoice[name] = path
	}

	prompt := &survey.Select{
		Message: "Which results file should be analyzed?",
		Options: choices,
	}
	if len(choices) > 0 {
		prompt.Default = choices[0]
	}

	var selected string
	if err := ask(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("prompting for results file: %w", err)
	}

	path, ok := byChoice[selected]
	if !ok {
		return "", ErrCanceled
	}

	return path, nil
}
