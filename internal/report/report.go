// Package report renders a platform comparison as a human-readable report.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/devinsights/benchcompare/internal/comparison"
	"github.com/devinsights/benchcompare/internal/format"
	"github.com/devinsights/benchcompare/internal/table"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

const ruleWidth = 60

var (
	rule    = strings.Repeat("=", ruleWidth)
	subRule = strings.Repeat("-", 40)
)

// TextRenderer writes the sectioned text report.
type TextRenderer struct {
	log    logrus.FieldLogger
	tables table.Renderer
	colors *table.ColorHelper
}

// NewTextRenderer creates a text report renderer.
func NewTextRenderer(log logrus.FieldLogger, tables table.Renderer) *TextRenderer {
	return &TextRenderer{
		log:    log.WithField("component", "report.text_renderer"),
		tables: tables,
		colors: table.NewColorHelper(),
	}
}

// Render writes every section of the report for cmp to w.
func (r *TextRenderer) Render(w io.Writer, cmp *comparison.Comparison) error {
	r.log.WithFields(logrus.Fields{
		"source": cmp.Source,
		"groups": len(cmp.Groups),
	}).Debug("rendering text report")

	var b strings.Builder

	r.writeOverview(&b, cmp)
	r.writeLatency(&b, cmp)
	r.writeResources(&b, cmp)
	r.writeColdStarts(&b, cmp)
	r.writeReliability(&b, cmp)
	r.writeGroups(&b, cmp)
	r.writeThresholds(&b, cmp)
	r.writeCost(&b, cmp)
	r.writeRecommendation(&b, cmp)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

func (r *TextRenderer) banner(b *strings.Builder, title string) {
	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, r.colors.Header(title))
	fmt.Fprintln(b, rule)
}

func (r *TextRenderer) section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n", r.colors.Header(title))
	fmt.Fprintln(b, subRule)
}

func (r *TextRenderer) writeOverview(b *strings.Builder, cmp *comparison.Comparison) {
	title := fmt.Sprintf("🧪 %s VS %s COMPARISON",
		strings.ToUpper(cmp.Candidate.Name), strings.ToUpper(cmp.Baseline.Name))
	r.banner(b, title)

	ov := cmp.Overview
	fmt.Fprintln(b, "📊 Test Overview:")
	fmt.Fprintf(b, "   • Total iterations: %.0f\n", ov.Iterations)
	fmt.Fprintf(b, "   • Estimated duration: %.1f minutes\n", ov.EstimatedMinutes)
	fmt.Fprintf(b, "   • All checks passed: %t\n", ov.AllChecksPassed)
	fmt.Fprintf(b, "   • Success rate: %s\n", r.colors.FormatSuccessRate(ov.SuccessRatePct))
}

func (r *TextRenderer) writeLatency(b *strings.Builder, cmp *comparison.Comparison) {
	fmt.Fprintln(b)
	r.banner(b, "🏆 PERFORMANCE COMPARISON")

	lat := cmp.Latency
	if lat == nil {
		return
	}

	r.section(b, "📈 Response Time Comparison:")

	rows := [][]string{
		{cmp.Candidate.Name, format.Milliseconds(lat.Candidate.AvgMs), format.Milliseconds(lat.Candidate.P95Ms)},
		{cmp.Baseline.Name, format.Milliseconds(lat.Baseline.AvgMs), format.Milliseconds(lat.Baseline.P95Ms)},
	}
	b.WriteString(r.tables.RenderToString(
		[]string{"Platform", "Average", "P95"},
		rows,
		table.WithColumnAlignment(tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT),
	))

	if lat.AvgDiffPct == nil && lat.P95DiffPct == nil {
		return
	}

	fmt.Fprintln(b, "\n🎯 Performance Difference:")
	if lat.AvgDiffPct != nil {
		fmt.Fprintf(b, "   • Average: %s\n", describeDiff(cmp.Baseline.Name, *lat.AvgDiffPct))
	}
	if lat.P95DiffPct != nil {
		fmt.Fprintf(b, "   • P95: %s\n", describeDiff(cmp.Baseline.Name, *lat.P95DiffPct))
	}
}

// describeDiff phrases a candidate-relative difference from the baseline's side.
func describeDiff(baseline string, diff float64) string {
	direction := "slower"
	if diff > 0 {
		direction = "faster"
	}

	return fmt.Sprintf("%s is %s %s", baseline, format.Percent(math.Abs(diff)), direction)
}

func (r *TextRenderer) writeResources(b *strings.Builder, cmp *comparison.Comparison) {
	res := cmp.Resources
	if res == nil {
		return
	}

	r.section(b, "🔥 RESOURCE COMPARISON:")

	rows := [][]string{
		{"CPU Ops/sec", fmt.Sprintf("%.0f", res.Candidate.OpsPerSecond), fmt.Sprintf("%.0f", res.Baseline.OpsPerSecond)},
		{"Memory Peak", format.Megabytes(res.Candidate.MemoryPeakMB), format.Megabytes(res.Baseline.MemoryPeakMB)},
	}
	if res.Candidate.MemoryGrowthMB != nil && res.Baseline.MemoryGrowthMB != nil {
		rows = append(rows, []string{
			"Memory Growth",
			format.Megabytes(*res.Candidate.MemoryGrowthMB),
			format.Megabytes(*res.Baseline.MemoryGrowthMB),
		})
	}

	b.WriteString(r.tables.RenderToString(
		[]string{"Metric", cmp.Candidate.Short, cmp.Baseline.Short},
		rows,
		table.WithColumnAlignment(tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT),
	))

	fmt.Fprintf(b, "\n🏆 CPU Winner: %s\n", r.colors.Bold(cmp.Platform(res.CPUWinner).Short))
	fmt.Fprintf(b, "🏆 Memory Winner: %s\n", r.colors.Bold(cmp.Platform(res.MemoryWinner).Short))
}

func (r *TextRenderer) writeColdStarts(b *strings.Builder, cmp *comparison.Comparison) {
	fmt.Fprintln(b, "\n❄️  Cold Starts:")
	fmt.Fprintf(b, "   • %s cold starts detected: %.0f\n", cmp.Candidate.Short, cmp.ColdStarts.Count)

	if cmp.ColdStarts.Count > 0 {
		fmt.Fprintf(b, "   • This explains some of the higher latency in %s\n", cmp.Candidate.Short)
	}
}

func (r *TextRenderer) writeReliability(b *strings.Builder, cmp *comparison.Comparison) {
	rel := cmp.Reliability

	fmt.Fprintln(b, "\n🔍 Reliability:")
	fmt.Fprintf(b, "   • Total requests: %.0f\n", rel.TotalRequests)
	fmt.Fprintf(b, "   • Failed requests: %.0f\n", rel.FailedRequests)
	fmt.Fprintf(b, "   • Success rate: %s\n", r.colors.FormatSuccessRate(rel.SuccessRatePct))
}

func (r *TextRenderer) writeGroups(b *strings.Builder, cmp *comparison.Comparison) {
	fmt.Fprintf(b, "\n%s\n", r.colors.Header("📋 Test Breakdown:"))
	fmt.Fprintln(b, strings.Repeat("-", 30))

	if len(cmp.Groups) == 0 {
		return
	}

	rows := make([][]string, 0, len(cmp.Groups))
	for _, g := range cmp.Groups {
		rows = append(rows, []string{
			r.colors.FormatStatus(g.OK),
			g.Name,
			r.colors.FormatChecks(g.Passed, g.Total) + " checks passed",
		})
	}

	b.WriteString(r.tables.RenderToString([]string{"", "Group", "Checks"}, rows))
}

func (r *TextRenderer) writeThresholds(b *strings.Builder, cmp *comparison.Comparison) {
	if len(cmp.Thresholds) == 0 {
		return
	}

	r.section(b, "🚦 Thresholds:")

	rows := make([][]string, 0, len(cmp.Thresholds))
	for _, t := range cmp.Thresholds {
		status := r.colors.Success("ok")
		if t.Breached {
			status = r.colors.Failure("breached")
		}
		rows = append(rows, []string{t.Metric, t.Expression, status})
	}

	b.WriteString(r.tables.RenderToString([]string{"Metric", "Threshold", "Status"}, rows))
}

func (r *TextRenderer) writeCost(b *strings.Builder, cmp *comparison.Comparison) {
	cost := cmp.Cost

	r.section(b, "💰 COST SUMMARY:")
	fmt.Fprintf(b, "Test: %.0f requests in %.1f min\n", cost.TotalRequests, cost.DurationMinutes)
	fmt.Fprintf(b, "%s: ~%s (pay per request)\n", cmp.Candidate.Short, format.Dollars(cost.Candidate))
	fmt.Fprintf(b, "%s: ~%s (always running)\n", cmp.Baseline.Short, format.Dollars(cost.Baseline))

	if cost.BreakEvenMonthlyVolume != nil {
		fmt.Fprintf(b, "Break-even: ~%s requests/month\n", format.Count(*cost.BreakEvenMonthlyVolume))
	}
}

func (r *TextRenderer) writeRecommendation(b *strings.Builder, cmp *comparison.Comparison) {
	rec := cmp.Recommendation
	candidate, baseline := cmp.Candidate.Short, cmp.Baseline.Short

	r.section(b, "🎯 RECOMMENDATION:")

	switch rec.Faster {
	case comparison.Candidate:
		fmt.Fprintf(b, "%s %s: Faster response times\n", r.colors.Success("✅"), candidate)
	case comparison.Baseline:
		fmt.Fprintf(b, "%s %s: Better response performance\n", r.colors.Success("✅"), baseline)
	}

	if rec.LowColdStartImpact {
		fmt.Fprintf(b, "%s %s: Low cold start impact\n", r.colors.Success("✅"), candidate)
	}

	fmt.Fprintf(b, "\n💡 Choose %s for:\n", candidate)
	fmt.Fprintln(b, "   • Variable traffic, fast responses, easy scaling")
	fmt.Fprintf(b, "\n💡 Choose %s for:\n", baseline)
	fmt.Fprintln(b, "   • Consistent traffic, always-warm, full control")

	fmt.Fprintf(b, "\n%s\n", rule)
}
