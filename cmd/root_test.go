package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devinsights/benchcompare/internal/config"
	"github.com/devinsights/benchcompare/internal/report"
	"github.com/devinsights/benchcompare/internal/resolver"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	log := logrus.New()

	t.Run("explicit argument wins", func(t *testing.T) {
		path, err := resolvePath(log, config.Default(), []string{"x_summary.json"}, report.FormatText)
		require.NoError(t, err)
		assert.Equal(t, "x_summary.json", path)
	})

	t.Run("latest file in results directory", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"20250101_summary.json", "20250202_summary.json"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
		}

		cfg := config.Default()
		cfg.ResultsDir = dir

		path, err := resolvePath(log, cfg, nil, report.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "20250202_summary.json"), path)
	})

	t.Run("missing results directory", func(t *testing.T) {
		cfg := config.Default()
		cfg.ResultsDir = filepath.Join(t.TempDir(), "results")

		_, err := resolvePath(log, cfg, nil, report.FormatJSON)
		require.ErrorIs(t, err, resolver.ErrNoResultsDir)
	})
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("baseline:\n  short: AKS\n"), 0o600))

	resultsDir, suffix, profileFile = "k6-tests/results", ".json", profile
	t.Cleanup(func() { resultsDir, suffix, profileFile = "", "", "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "k6-tests/results", cfg.ResultsDir)
	assert.Equal(t, ".json", cfg.SummarySuffix)
	assert.Equal(t, "AKS", cfg.Baseline.Short)
	assert.Equal(t, profile, cfg.ProfileFile)
}

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		verbose  bool
		expected logrus.Level
	}{
		{name: "default is info", expected: logrus.InfoLevel},
		{name: "level from environment", logLevel: "warn", expected: logrus.WarnLevel},
		{name: "invalid level falls back to info", logLevel: "loud", expected: logrus.InfoLevel},
		{name: "verbose overrides level", logLevel: "error", verbose: true, expected: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logrus.New()
			configureLogger(log, tt.logLevel, tt.verbose)
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}
