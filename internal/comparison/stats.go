package comparison

import "math"

// EstimatedMinutes derives the test duration from the average iteration
// duration (ms) and the iteration count. A missing average reads as 0.
func EstimatedMinutes(iterationAvgMs, iterations float64) float64 {
	if iterationAvgMs == 0 {
		return 0
	}

	return finite(iterationAvgMs * iterations / 1000 / 60)
}

// RelativeDiff returns (candidate - baseline) / baseline * 100.
// Positive means the candidate is slower or larger. ok is false when the
// baseline is zero and the difference is undefined.
func RelativeDiff(candidate, baseline float64) (diff float64, ok bool) {
	if baseline == 0 {
		return 0, false
	}

	return finite((candidate - baseline) / baseline * 100), true
}

// ErrorRate returns failed / total * 100, or 0 when nothing was sent.
func ErrorRate(failed, total float64) float64 {
	if total == 0 {
		return 0
	}

	return finite(failed / total * 100)
}

// ColdStartRate returns cold starts per request as a percentage. The
// denominator is clamped to 1 so an empty run cannot divide by zero.
func ColdStartRate(coldStarts, totalRequests float64) float64 {
	return finite(coldStarts / math.Max(totalRequests, 1) * 100)
}

// CandidateCost prices the serverless platform per request.
func CandidateCost(totalRequests, pricePerRequest float64) float64 {
	return finite(totalRequests * pricePerRequest)
}

// BaselineCost prices the always-on platform for the duration of the test.
func BaselineCost(durationMinutes, costPerMinute float64) float64 {
	return finite(costPerMinute * durationMinutes)
}

// BreakEvenRequests is the monthly request volume at which per-request
// pricing costs as much as the always-on cluster.
func BreakEvenRequests(clusterMonthlyCost, pricePerRequest float64) (float64, bool) {
	if pricePerRequest == 0 {
		return 0, false
	}

	return finite(clusterMonthlyCost / pricePerRequest), true
}

// finite clamps overflowed results to the largest float64 and maps NaN to 0,
// keeping every derived figure encodable as JSON.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}

	return v
}

// Side names one of the two compared platforms.
type Side string

const (
	// Candidate is the serverless platform under evaluation.
	Candidate Side = "candidate"
	// Baseline is the container platform it is measured against.
	Baseline Side = "baseline"
)

// HigherWins picks the side with the larger value. Ties go to the baseline.
func HigherWins(candidate, baseline float64) Side {
	if candidate > baseline {
		return Candidate
	}

	return Baseline
}

// LowerWins picks the side with the smaller value. Ties go to the baseline.
func LowerWins(candidate, baseline float64) Side {
	if candidate < baseline {
		return Candidate
	}

	return Baseline
}
