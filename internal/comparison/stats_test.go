package comparison

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedMinutes(t *testing.T) {
	assert.InDelta(t, 10.0, EstimatedMinutes(6000, 100), 1e-9)
	assert.Zero(t, EstimatedMinutes(0, 100))
	assert.Zero(t, EstimatedMinutes(6000, 0))
}

func TestRelativeDiff(t *testing.T) {
	tests := []struct {
		name      string
		candidate float64
		baseline  float64
		expected  float64
		ok        bool
	}{
		{name: "candidate twice as slow", candidate: 100, baseline: 50, expected: 100, ok: true},
		{name: "candidate faster", candidate: 25, baseline: 50, expected: -50, ok: true},
		{name: "equal", candidate: 50, baseline: 50, expected: 0, ok: true},
		{name: "zero baseline is skipped", candidate: 50, baseline: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, ok := RelativeDiff(tt.candidate, tt.baseline)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, diff, 1e-9)
		})
	}
}

func TestErrorRate(t *testing.T) {
	assert.InDelta(t, 2.5, ErrorRate(25, 1000), 1e-9)
	assert.Zero(t, ErrorRate(0, 0))
	assert.Zero(t, ErrorRate(7, 0))
}

func TestColdStartRate(t *testing.T) {
	assert.InDelta(t, 500.0, ColdStartRate(5, 0), 1e-9)
	assert.InDelta(t, 0.5, ColdStartRate(5, 1000), 1e-9)
	assert.Zero(t, ColdStartRate(0, 1000))
}

func TestCosts(t *testing.T) {
	assert.InDelta(t, 0.0002, CandidateCost(1000, 0.0000002), 1e-12)
	assert.InDelta(t, 73.0/43200*10, BaselineCost(10, 73.0/43200), 1e-12)

	volume, ok := BreakEvenRequests(73, 0.0000002)
	require.True(t, ok)
	assert.InDelta(t, 365_000_000.0, volume, 1e-3)

	_, ok = BreakEvenRequests(73, 0)
	assert.False(t, ok)
}

func TestWinners(t *testing.T) {
	assert.Equal(t, Candidate, HigherWins(200, 100))
	assert.Equal(t, Baseline, HigherWins(100, 200))
	assert.Equal(t, Baseline, HigherWins(100, 100), "ties go to the baseline")

	assert.Equal(t, Candidate, LowerWins(64, 128))
	assert.Equal(t, Baseline, LowerWins(128, 64))
	assert.Equal(t, Baseline, LowerWins(64, 64), "ties go to the baseline")
}

func TestDerivedValuesStayFinite(t *testing.T) {
	assert.Equal(t, math.MaxFloat64, EstimatedMinutes(1e300, 1e300))
	assert.Equal(t, math.MaxFloat64, CandidateCost(1e300, 1e300))

	diff, ok := RelativeDiff(-1e308, 1e-300)
	require.True(t, ok)
	assert.Equal(t, -math.MaxFloat64, diff)

	assert.Zero(t, finite(math.NaN()))
	assert.InDelta(t, 42.0, finite(42), 1e-9)
}
