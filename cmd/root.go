package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devinsights/benchcompare/internal/config"
	"github.com/devinsights/benchcompare/internal/interactive"
	"github.com/devinsights/benchcompare/internal/report"
	"github.com/devinsights/benchcompare/internal/resolver"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	verbose      bool
	envFile      string
	resultsDir   string
	suffix       string
	profileFile  string
	outputFormat string
	pick         bool

	rootCmd = &cobra.Command{
		Use:   "benchcompare [summary-file]",
		Short: "Compare serverless and Kubernetes k6 load-test results",
		Long: `benchcompare reads a k6 summary export and prints a report comparing
the serverless platform against the Kubernetes deployment on latency,
throughput, memory, reliability and estimated cost.

When no summary file is given, the most recent *_summary.json file in the
results directory is used.

Examples:
  benchcompare
  benchcompare results/20250301_101500_summary.json
  benchcompare --pick --dir k6-tests/results
  benchcompare --format yaml > comparison.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Level is applied once flags are parsed; main has loaded the env file by then
	Logger = logrus.New()
	cobra.OnInitialize(func() {
		configureLogger(Logger, os.Getenv("LOG_LEVEL"), verbose)
	})

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	// Consumed by main before cobra runs; registered so the flag is accepted
	flags.StringVar(&envFile, "env", "", "Environment file to load (default .env)")
	flags.StringVar(&resultsDir, "dir", "", "Directory searched for summary files (overrides BENCH_RESULTS_DIR)")
	flags.StringVar(&suffix, "suffix", "", "Summary filename suffix (overrides BENCH_SUMMARY_SUFFIX)")
	flags.StringVar(&profileFile, "profile", "", "YAML platform and pricing profile (overrides BENCH_PROFILE_FILE)")

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", string(report.FormatText), "Output format: text, yaml or json")
	rootCmd.Flags().BoolVar(&pick, "pick", false, "Choose the summary file interactively")
}

// loadConfig reads the environment configuration and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}
	if suffix != "" {
		cfg.SummarySuffix = suffix
	}

	if profileFile != "" {
		profile, err := config.LoadProfile(profileFile)
		if err != nil {
			return nil, err
		}
		cfg.ProfileFile = profileFile
		cfg.ApplyProfile(profile)

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", profileFile, err)
		}
	}

	return cfg, nil
}

func runReport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	path, err := resolvePath(Logger, cfg, args, format)
	if err != nil {
		return err
	}

	return report.NewGenerator(Logger, cfg, os.Stdout, format).Generate(path)
}

// resolvePath returns the explicit argument, or a summary file from the results directory
func resolvePath(log logrus.FieldLogger, cfg *config.Config, args []string, format report.Format) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	var (
		path string
		err  error
	)

	if pick {
		paths, cerr := resolver.Candidates(cfg.ResultsDir, cfg.SummarySuffix)
		if cerr != nil {
			return "", cerr
		}
		path, err = interactive.PickFile(interactive.AskOne, paths)
	} else {
		path, err = resolver.Latest(cfg.ResultsDir, cfg.SummarySuffix)
		if err == nil && format == report.FormatText {
			fmt.Printf("📁 Using most recent results: %s\n", filepath.Base(path))
		}
	}

	if err != nil {
		return "", err
	}

	log.WithField("path", path).Debug("resolved summary file")

	return path, nil
}
