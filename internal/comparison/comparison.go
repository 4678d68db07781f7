// Package comparison extracts platform metrics from a k6 snapshot and derives
// the statistics the report is built from.
package comparison

import (
	"fmt"

	"github.com/devinsights/benchcompare/internal/config"
	"github.com/devinsights/benchcompare/internal/snapshot"
	"github.com/sirupsen/logrus"
)

// Metric names shared by every k6 run, independent of platform tags.
const (
	MetricIterations        = "iterations"
	MetricIterationDuration = "iteration_duration"
	MetricChecks            = "checks"
	MetricErrors            = "errors"
	MetricHTTPReqs          = "http_reqs"
	MetricHTTPReqFailed     = "http_req_failed"
)

// DurationMetric is the tagged request-duration metric of a platform.
func DurationMetric(tag string) string {
	return fmt.Sprintf("http_req_duration{platform:%s}", tag)
}

// OpsPerSecondMetric is the CPU throughput trend of a platform.
func OpsPerSecondMetric(tag string) string {
	return tag + "_ops_per_second"
}

// MemoryPeakMetric is the peak memory trend of a platform.
func MemoryPeakMetric(tag string) string {
	return tag + "_memory_peak_mb"
}

// MemoryGrowthMetric is the memory growth trend of a platform.
func MemoryGrowthMetric(tag string) string {
	return tag + "_memory_growth_mb"
}

// ColdStartsMetric is the cold-start counter of the serverless platform.
func ColdStartsMetric(tag string) string {
	return tag + "_cold_starts"
}

// Overview summarises the run as a whole.
type Overview struct {
	Iterations       float64 `json:"iterations" yaml:"iterations"`
	EstimatedMinutes float64 `json:"estimated_minutes" yaml:"estimated_minutes"`
	AllChecksPassed  bool    `json:"all_checks_passed" yaml:"all_checks_passed"`
	SuccessRatePct   float64 `json:"success_rate_pct" yaml:"success_rate_pct"`
}

// LatencyStats holds one platform's response times in milliseconds.
type LatencyStats struct {
	AvgMs float64 `json:"avg_ms" yaml:"avg_ms"`
	P95Ms float64 `json:"p95_ms" yaml:"p95_ms"`
}

// Latency compares response times. Diffs are nil when the baseline is zero.
type Latency struct {
	Candidate  LatencyStats `json:"candidate" yaml:"candidate"`
	Baseline   LatencyStats `json:"baseline" yaml:"baseline"`
	AvgDiffPct *float64     `json:"avg_diff_pct,omitempty" yaml:"avg_diff_pct,omitempty"`
	P95DiffPct *float64     `json:"p95_diff_pct,omitempty" yaml:"p95_diff_pct,omitempty"`
}

// ResourceStats holds one platform's CPU and memory figures.
type ResourceStats struct {
	OpsPerSecond   float64  `json:"ops_per_second" yaml:"ops_per_second"`
	MemoryPeakMB   float64  `json:"memory_peak_mb" yaml:"memory_peak_mb"`
	MemoryGrowthMB *float64 `json:"memory_growth_mb,omitempty" yaml:"memory_growth_mb,omitempty"`
}

// Resources compares throughput and memory.
type Resources struct {
	Candidate    ResourceStats `json:"candidate" yaml:"candidate"`
	Baseline     ResourceStats `json:"baseline" yaml:"baseline"`
	CPUWinner    Side          `json:"cpu_winner" yaml:"cpu_winner"`
	MemoryWinner Side          `json:"memory_winner" yaml:"memory_winner"`
}

// ColdStarts counts serverless cold starts.
type ColdStarts struct {
	Count   float64 `json:"count" yaml:"count"`
	RatePct float64 `json:"rate_pct" yaml:"rate_pct"`
}

// Reliability summarises request failures.
type Reliability struct {
	TotalRequests  float64 `json:"total_requests" yaml:"total_requests"`
	FailedRequests float64 `json:"failed_requests" yaml:"failed_requests"`
	ErrorRatePct   float64 `json:"error_rate_pct" yaml:"error_rate_pct"`
	SuccessRatePct float64 `json:"success_rate_pct" yaml:"success_rate_pct"`
}

// GroupResult is the check tally of one k6 group.
type GroupResult struct {
	Name   string `json:"name" yaml:"name"`
	Passed int64  `json:"passed" yaml:"passed"`
	Total  int64  `json:"total" yaml:"total"`
	OK     bool   `json:"ok" yaml:"ok"`
}

// ThresholdResult is one k6 threshold outcome.
type ThresholdResult struct {
	Metric     string `json:"metric" yaml:"metric"`
	Expression string `json:"expression" yaml:"expression"`
	Breached   bool   `json:"breached" yaml:"breached"`
}

// Cost holds the illustrative linear cost estimates.
type Cost struct {
	TotalRequests          float64  `json:"total_requests" yaml:"total_requests"`
	DurationMinutes        float64  `json:"duration_minutes" yaml:"duration_minutes"`
	Candidate              float64  `json:"candidate" yaml:"candidate"`
	Baseline               float64  `json:"baseline" yaml:"baseline"`
	BreakEvenMonthlyVolume *float64 `json:"break_even_monthly_requests,omitempty" yaml:"break_even_monthly_requests,omitempty"`
}

// Recommendation carries the inputs of the qualitative verdict.
type Recommendation struct {
	// Faster is empty when latency could not be compared.
	Faster             Side `json:"faster,omitempty" yaml:"faster,omitempty"`
	LowColdStartImpact bool `json:"low_cold_start_impact" yaml:"low_cold_start_impact"`
}

// Comparison is everything the report renders, derived from one snapshot.
type Comparison struct {
	Source         string            `json:"source,omitempty" yaml:"source,omitempty"`
	Candidate      config.Platform   `json:"candidate_platform" yaml:"candidate_platform"`
	Baseline       config.Platform   `json:"baseline_platform" yaml:"baseline_platform"`
	Overview       Overview          `json:"overview" yaml:"overview"`
	Latency        *Latency          `json:"latency,omitempty" yaml:"latency,omitempty"`
	Resources      *Resources        `json:"resources,omitempty" yaml:"resources,omitempty"`
	ColdStarts     ColdStarts        `json:"cold_starts" yaml:"cold_starts"`
	Reliability    Reliability       `json:"reliability" yaml:"reliability"`
	Groups         []GroupResult     `json:"groups" yaml:"groups"`
	Thresholds     []ThresholdResult `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
	Cost           Cost              `json:"cost" yaml:"cost"`
	Recommendation Recommendation    `json:"recommendation" yaml:"recommendation"`
}

// Platform returns the configured platform of a side.
func (c *Comparison) Platform(side Side) config.Platform {
	if side == Candidate {
		return c.Candidate
	}

	return c.Baseline
}

// Comparer turns snapshots into comparisons
type Comparer struct {
	log logrus.FieldLogger
	cfg *config.Config
}

// NewComparer creates a comparer for the configured platforms and pricing.
func NewComparer(log logrus.FieldLogger, cfg *config.Config) *Comparer {
	return &Comparer{
		log: log.WithField("component", "comparer"),
		cfg: cfg,
	}
}

// Compare extracts and derives every report figure. Missing metrics and
// statistics read as zero; sections whose sources are absent are left nil.
func (c *Comparer) Compare(snap *snapshot.Snapshot) *Comparison {
	var (
		candidate = c.cfg.Candidate
		baseline  = c.cfg.Baseline
		metric    = snap.Metric
	)

	iterations := metric(MetricIterations).Get(snapshot.StatCount)
	minutes := EstimatedMinutes(metric(MetricIterationDuration).Get(snapshot.StatAvg), iterations)

	cmp := &Comparison{
		Source:    snap.Path,
		Candidate: candidate,
		Baseline:  baseline,
		Overview: Overview{
			Iterations:       iterations,
			EstimatedMinutes: minutes,
			AllChecksPassed:  metric(MetricChecks).Get(snapshot.StatValue) == 1,
			SuccessRatePct:   finite(100 - metric(MetricErrors).Get(snapshot.StatValue)*100),
		},
	}

	cmp.Latency = c.latency(snap)
	cmp.Resources = c.resources(snap)

	totalRequests := metric(MetricHTTPReqs).Get(snapshot.StatCount)
	failedRequests := metric(MetricHTTPReqFailed).Get(snapshot.StatPasses)
	errorRate := ErrorRate(failedRequests, totalRequests)

	cmp.Reliability = Reliability{
		TotalRequests:  totalRequests,
		FailedRequests: failedRequests,
		ErrorRatePct:   errorRate,
		SuccessRatePct: 100 - errorRate,
	}

	coldStarts := metric(ColdStartsMetric(candidate.Tag)).Get(snapshot.StatCount)
	cmp.ColdStarts = ColdStarts{
		Count:   coldStarts,
		RatePct: ColdStartRate(coldStarts, totalRequests),
	}

	cmp.Groups = groupResults(snap.Groups())
	cmp.Thresholds = thresholdResults(snap.Thresholds())

	pricing := c.cfg.Pricing
	cmp.Cost = Cost{
		TotalRequests:   totalRequests,
		DurationMinutes: minutes,
		Candidate:       CandidateCost(totalRequests, pricing.PricePerRequest),
		Baseline:        BaselineCost(minutes, pricing.ClusterCostPerMinute()),
	}
	if volume, ok := BreakEvenRequests(pricing.ClusterMonthlyCost, pricing.PricePerRequest); ok {
		cmp.Cost.BreakEvenMonthlyVolume = &volume
	}

	if cmp.Latency != nil {
		cmp.Recommendation.Faster = LowerWins(cmp.Latency.Candidate.AvgMs, cmp.Latency.Baseline.AvgMs)
	}
	cmp.Recommendation.LowColdStartImpact = coldStarts > 0 && cmp.ColdStarts.RatePct < c.cfg.ColdStartLowImpactPct

	c.log.WithFields(logrus.Fields{
		"latency":    cmp.Latency != nil,
		"resources":  cmp.Resources != nil,
		"groups":     len(cmp.Groups),
		"thresholds": len(cmp.Thresholds),
	}).Debug("comparison derived")

	return cmp
}

func (c *Comparer) latency(snap *snapshot.Snapshot) *Latency {
	candidateName := DurationMetric(c.cfg.Candidate.Tag)
	baselineName := DurationMetric(c.cfg.Baseline.Tag)

	if !snap.Has(candidateName) || !snap.Has(baselineName) {
		c.log.WithFields(logrus.Fields{
			"candidate": candidateName,
			"baseline":  baselineName,
		}).Debug("duration metrics missing, skipping latency comparison")

		return nil
	}

	cm, bm := snap.Metric(candidateName), snap.Metric(baselineName)
	lat := &Latency{
		Candidate: LatencyStats{AvgMs: cm.Get(snapshot.StatAvg), P95Ms: cm.Get(snapshot.StatP95)},
		Baseline:  LatencyStats{AvgMs: bm.Get(snapshot.StatAvg), P95Ms: bm.Get(snapshot.StatP95)},
	}

	if diff, ok := RelativeDiff(lat.Candidate.AvgMs, lat.Baseline.AvgMs); ok {
		lat.AvgDiffPct = &diff
	}
	if diff, ok := RelativeDiff(lat.Candidate.P95Ms, lat.Baseline.P95Ms); ok {
		lat.P95DiffPct = &diff
	}

	return lat
}

func (c *Comparer) resources(snap *snapshot.Snapshot) *Resources {
	candidateTag, baselineTag := c.cfg.Candidate.Tag, c.cfg.Baseline.Tag

	required := []string{
		OpsPerSecondMetric(candidateTag),
		OpsPerSecondMetric(baselineTag),
		MemoryPeakMetric(candidateTag),
		MemoryPeakMetric(baselineTag),
	}
	for _, name := range required {
		if !snap.Has(name) {
			c.log.WithField("metric", name).Debug("resource metric missing, skipping resource comparison")
			return nil
		}
	}

	res := &Resources{
		Candidate: ResourceStats{
			OpsPerSecond: snap.Metric(OpsPerSecondMetric(candidateTag)).Get(snapshot.StatAvg),
			MemoryPeakMB: snap.Metric(MemoryPeakMetric(candidateTag)).Get(snapshot.StatAvg),
		},
		Baseline: ResourceStats{
			OpsPerSecond: snap.Metric(OpsPerSecondMetric(baselineTag)).Get(snapshot.StatAvg),
			MemoryPeakMB: snap.Metric(MemoryPeakMetric(baselineTag)).Get(snapshot.StatAvg),
		},
	}

	if snap.Has(MemoryGrowthMetric(candidateTag)) && snap.Has(MemoryGrowthMetric(baselineTag)) {
		candidateGrowth := snap.Metric(MemoryGrowthMetric(candidateTag)).Get(snapshot.StatAvg)
		baselineGrowth := snap.Metric(MemoryGrowthMetric(baselineTag)).Get(snapshot.StatAvg)
		res.Candidate.MemoryGrowthMB = &candidateGrowth
		res.Baseline.MemoryGrowthMB = &baselineGrowth
	}

	res.CPUWinner = HigherWins(res.Candidate.OpsPerSecond, res.Baseline.OpsPerSecond)
	res.MemoryWinner = LowerWins(res.Candidate.MemoryPeakMB, res.Baseline.MemoryPeakMB)

	return res
}

func groupResults(groups []snapshot.Group) []GroupResult {
	results := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		results = append(results, GroupResult{
			Name:   g.Name,
			Passed: g.Passes(),
			Total:  g.Total(),
			OK:     g.Passed(),
		})
	}

	return results
}

func thresholdResults(thresholds []snapshot.Threshold) []ThresholdResult {
	if len(thresholds) == 0 {
		return nil
	}

	results := make([]ThresholdResult, 0, len(thresholds))
	for _, t := range thresholds {
		results = append(results, ThresholdResult{
			Metric:     t.Metric,
			Expression: t.Expression,
			Breached:   t.Breached,
		})
	}

	return results
}
