package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
}

func TestLatest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "20250101_120000_summary.json")
	touch(t, dir, "20250302_090000_summary.json")
	touch(t, dir, "20250201_080000_summary.json")
	touch(t, dir, "20251231_235959_raw.json")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "99999999_summary.json"), 0o700))

	latest, err := Latest(dir, "_summary.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20250302_090000_summary.json"), latest)
}

func TestCandidates_NewestFirst(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, dir, "a_summary.json")
	touch(t, dir, "c_summary.json")
	touch(t, dir, "b_summary.json")

	paths, err := Candidates(dir, "_summary.json")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "c_summary.json"),
		filepath.Join(dir, "b_summary.json"),
		filepath.Join(dir, "a_summary.json"),
	}, paths)
}

func TestLatest_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := Latest(filepath.Join(t.TempDir(), "results"), "_summary.json")
		require.ErrorIs(t, err, ErrNoResultsDir)
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		touch(t, dir, "notes.txt")

		_, err := Latest(dir, "_summary.json")
		require.ErrorIs(t, err, ErrNoSummaryFiles)
	})
}
