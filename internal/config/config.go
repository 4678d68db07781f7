// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	errNegativePrice       = errors.New("price per request must not be negative")
	errNegativeClusterCost = errors.New("cluster monthly cost must not be negative")
	errPlatformTagRequired = errors.New("platform tag is required")
	errDuplicatePlatform   = errors.New("candidate and baseline platforms share a tag")
)

// Platform describes one side of the comparison.
type Platform struct {
	Name  string `yaml:"name" json:"name"`
	Short string `yaml:"short" json:"short"`
	Tag   string `yaml:"tag" json:"tag"`
}

// Pricing holds the constants of the illustrative cost model.
type Pricing struct {
	PricePerRequest    float64 `yaml:"price_per_request" json:"price_per_request"`
	ClusterMonthlyCost float64 `yaml:"cluster_monthly_cost" json:"cluster_monthly_cost"`
}

// ClusterCostPerMinute spreads the monthly cluster cost over a 30-day month.
func (p Pricing) ClusterCostPerMinute() float64 {
	return p.ClusterMonthlyCost / MinutesPerMonth
}

// Config holds the application configuration
type Config struct {
	ResultsDir            string
	SummarySuffix         string
	ProfileFile           string
	Candidate             Platform
	Baseline              Platform
	Pricing               Pricing
	ColdStartLowImpactPct float64
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		ResultsDir:    DefaultResultsDir,
		SummarySuffix: DefaultSummarySuffix,
		Candidate: Platform{
			Name:  DefaultCandidateName,
			Short: DefaultCandidateShort,
			Tag:   DefaultCandidateTag,
		},
		Baseline: Platform{
			Name:  DefaultBaselineName,
			Short: DefaultBaselineShort,
			Tag:   DefaultBaselineTag,
		},
		Pricing: Pricing{
			PricePerRequest:    DefaultPricePerRequest,
			ClusterMonthlyCost: DefaultClusterMonthlyCost,
		},
		ColdStartLowImpactPct: DefaultColdStartLowImpactPct,
	}
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := Default()
	cfg.ResultsDir = getEnv("BENCH_RESULTS_DIR", cfg.ResultsDir)
	cfg.SummarySuffix = getEnv("BENCH_SUMMARY_SUFFIX", cfg.SummarySuffix)
	cfg.ProfileFile = getEnv("BENCH_PROFILE_FILE", "")

	// Parse numeric values
	price, err := getEnvFloat("BENCH_PRICE_PER_REQUEST", cfg.Pricing.PricePerRequest)
	if err != nil {
		return nil, err
	}
	cfg.Pricing.PricePerRequest = price

	monthly, err := getEnvFloat("BENCH_CLUSTER_MONTHLY_COST", cfg.Pricing.ClusterMonthlyCost)
	if err != nil {
		return nil, err
	}
	cfg.Pricing.ClusterMonthlyCost = monthly

	threshold, err := getEnvFloat("BENCH_COLD_START_LOW_IMPACT_PCT", cfg.ColdStartLowImpactPct)
	if err != nil {
		return nil, err
	}
	cfg.ColdStartLowImpactPct = threshold

	if cfg.ProfileFile != "" {
		profile, err := LoadProfile(cfg.ProfileFile)
		if err != nil {
			return nil, err
		}
		cfg.ApplyProfile(profile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the report cannot be rendered with.
func (c *Config) Validate() error {
	if c.Pricing.PricePerRequest < 0 {
		return errNegativePrice
	}

	if c.Pricing.ClusterMonthlyCost < 0 {
		return errNegativeClusterCost
	}

	if c.Candidate.Tag == "" || c.Baseline.Tag == "" {
		return errPlatformTagRequired
	}

	if c.Candidate.Tag == c.Baseline.Tag {
		return fmt.Errorf("%w: %s", errDuplicatePlatform, c.Candidate.Tag)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return value, nil
}

func (c *Config) String() string {
	profileDisplay := c.ProfileFile
	if profileDisplay == "" {
		profileDisplay = "(not set)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Results Directory:        %s
Summary Suffix:           %s
Profile File:             %s
Candidate Platform:       %s (%s, tag %q)
Baseline Platform:        %s (%s, tag %q)
Price Per Request:        $%.7f
Cluster Monthly Cost:     $%.2f
Cold Start Low Impact:    %.1f%%`,
		c.ResultsDir,
		c.SummarySuffix,
		profileDisplay,
		c.Candidate.Name, c.Candidate.Short, c.Candidate.Tag,
		c.Baseline.Name, c.Baseline.Short, c.Baseline.Tag,
		c.Pricing.PricePerRequest,
		c.Pricing.ClusterMonthlyCost,
		c.ColdStartLowImpactPct,
	)
}
