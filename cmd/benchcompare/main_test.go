package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devinsights/benchcompare/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "no flag", args: []string{"benchcompare", "results/a_summary.json"}},
		{name: "separate value", args: []string{"benchcompare", "--env", "prod.env"}, expected: "prod.env"},
		{name: "equals form", args: []string{"benchcompare", "--env=ci.env", "x.json"}, expected: "ci.env"},
		{name: "flag without value", args: []string{"benchcompare", "--env"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseEnvFlag(tt.args))
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("explicit file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.env")
		require.NoError(t, os.WriteFile(path, []byte("BENCH_TEST_ENV_VALUE=loaded\n"), 0o600))
		t.Setenv("BENCH_TEST_ENV_VALUE", "")
		require.NoError(t, os.Unsetenv("BENCH_TEST_ENV_VALUE"))

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "loaded", os.Getenv("BENCH_TEST_ENV_VALUE"))
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		require.Error(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	})
}

func TestLoadEnvFile_ExplicitFileOverridesDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BENCH_CLUSTER_MONTHLY_COST=10\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.env"), []byte("BENCH_CLUSTER_MONTHLY_COST=20\n"), 0o600))
	chdir(t, dir)

	t.Setenv("BENCH_CLUSTER_MONTHLY_COST", "")
	require.NoError(t, os.Unsetenv("BENCH_CLUSTER_MONTHLY_COST"))

	require.NoError(t, loadEnvFile(parseEnvFlag([]string{"benchcompare", "--env", "custom.env"})))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.InDelta(t, 20.0, cfg.Pricing.ClusterMonthlyCost, 1e-9)
}

func TestLoadEnvFile_DefaultDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BENCH_CLUSTER_MONTHLY_COST=10\n"), 0o600))
	chdir(t, dir)

	t.Setenv("BENCH_CLUSTER_MONTHLY_COST", "")
	require.NoError(t, os.Unsetenv("BENCH_CLUSTER_MONTHLY_COST"))

	require.NoError(t, loadEnvFile(parseEnvFlag([]string{"benchcompare"})))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.InDelta(t, 10.0, cfg.Pricing.ClusterMonthlyCost, 1e-9)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
