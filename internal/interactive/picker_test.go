package interactive

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickFile(t *testing.T) {
	paths := []string{"results/b_summary.json", "results/a_summary.json"}

	t.Run("returns the chosen path", func(t *testing.T) {
		ask := func(prompt survey.Prompt, response interface{}) error {
			sel, ok := prompt.(*survey.Select)
			require.True(t, ok)
			assert.Equal(t, []string{"b_summary.json", "a_summary.json"}, sel.Options)
			assert.Equal(t, "b_summary.json", sel.Default)

			*(response.(*string)) = "a_summary.json"
			return nil
		}

		path, err := PickFile(ask, paths)
		require.NoError(t, err)
		assert.Equal(t, "results/a_summary.json", path)
	})

	t.Run("interrupt cancels", func(t *testing.T) {
		ask := func(survey.Prompt, interface{}) error {
			return terminal.InterruptErr
		}

		_, err := PickFile(ask, paths)
		require.True(t, errors.Is(err, ErrCanceled))
	})

	t.Run("prompt failure is not a cancel", func(t *testing.T) {
		ttyErr := errors.New("not a terminal")
		ask := func(survey.Prompt, interface{}) error {
			return ttyErr
		}

		_, err := PickFile(ask, paths)
		require.ErrorIs(t, err, ttyErr)
		assert.NotErrorIs(t, err, ErrCanceled)
	})
}
