package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file overriding platform labels and pricing.
// Unset fields keep the values already in the Config.
//
//	candidate:
//	  name: AWS Lambda
//	  short: Lambda
//	  tag: lambda
//	pricing:
//	  price_per_request: 0.0000002
//	  cluster_monthly_cost: 146
type Profile struct {
	Candidate             *Platform       `yaml:"candidate"`
	Baseline              *Platform       `yaml:"baseline"`
	Pricing               *ProfilePricing `yaml:"pricing"`
	ColdStartLowImpactPct *float64        `yaml:"cold_start_low_impact_pct"`
}

// ProfilePricing mirrors Pricing with optional fields.
type ProfilePricing struct {
	PricePerRequest    *float64 `yaml:"price_per_request"`
	ClusterMonthlyCost *float64 `yaml:"cluster_monthly_cost"`
}

// LoadProfile reads and parses a YAML profile file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}

	return &profile, nil
}

// ApplyProfile merges the set fields of p into the configuration.
func (c *Config) ApplyProfile(p *Profile) {
	if p == nil {
		return
	}

	mergePlatform(&c.Candidate, p.Candidate)
	mergePlatform(&c.Baseline, p.Baseline)

	if p.Pricing != nil {
		if p.Pricing.PricePerRequest != nil {
			c.Pricing.PricePerRequest = *p.Pricing.PricePerRequest
		}
		if p.Pricing.ClusterMonthlyCost != nil {
			c.Pricing.ClusterMonthlyCost = *p.Pricing.ClusterMonthlyCost
		}
	}

	if p.ColdStartLowImpactPct != nil {
		c.ColdStartLowImpactPct = *p.ColdStartLowImpactPct
	}
}

func mergePlatform(dst, src *Platform) {
	if src == nil {
		return
	}

	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Short != "" {
		dst.Short = src.Short
	}
	if src.Tag != "" {
		dst.Tag = src.Tag
	}
}
