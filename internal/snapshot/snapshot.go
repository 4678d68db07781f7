// Package snapshot decodes k6 summary exports into read-only snapshots.
package snapshot

// Statistic names used by k6 in summary exports.
const (
	StatAvg    = "avg"
	StatP95    = "p(95)"
	StatCount  = "count"
	StatValue  = "value"
	StatPasses = "passes"
)

// Metric holds the numeric statistics of one measured quantity.
// The zero value is an absent metric; every statistic reads as 0.
type Metric map[string]float64

// Get returns the named statistic, or 0 when it is absent.
func (m Metric) Get(stat string) float64 {
	return m[stat]
}

// Has reports whether the statistic is present.
func (m Metric) Has(stat string) bool {
	_, ok := m[stat]
	return ok
}

// Empty reports whether the metric carries no statistics.
func (m Metric) Empty() bool {
	return len(m) == 0
}

// Check is a single named k6 check with its pass/fail counts.
type Check struct {
	Name   string
	Passes int64
	Fails  int64
}

// Group is a named test section with its checks, ordered by name.
type Group struct {
	Name   string
	Checks []Check
}

// Passes returns the number of passed checks across the group.
func (g Group) Passes() int64 {
	var n int64
	for _, c := range g.Checks {
		n += c.Passes
	}
	return n
}

// Total returns passes plus fails across the group.
func (g Group) Total() int64 {
	var n int64
	for _, c := range g.Checks {
		n += c.Passes + c.Fails
	}
	return n
}

// Passed reports whether every check in the group passed.
func (g Group) Passed() bool {
	return g.Passes() == g.Total()
}

// Threshold is a threshold expression configured on a metric.
type Threshold struct {
	Metric     string
	Expression string
	// Breached is true when k6 reported the threshold as crossed.
	Breached bool
}

// Snapshot is the decoded result document of one test run.
type Snapshot struct {
	Path       string
	metrics    map[string]Metric
	groups     []Group
	thresholds []Threshold
}

// Metric returns the named metric. Absent metrics are empty, never nil-panicking.
func (s *Snapshot) Metric(name string) Metric {
	return s.metrics[name]
}

// Has reports whether the named metric is present with at least one statistic.
func (s *Snapshot) Has(name string) bool {
	return !s.metrics[name].Empty()
}

// Groups returns the root group's sub-groups, ordered by name.
func (s *Snapshot) Groups() []Group {
	return s.groups
}

// Thresholds returns all thresholds ordered by metric then expression.
func (s *Snapshot) Thresholds() []Threshold {
	return s.thresholds
}
