package table

import (
	"fmt"

	"github.com/devinsights/benchcompare/internal/format"
	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring report output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Bold returns bold text
func (c *ColorHelper) Bold(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatStatus returns the pass/fail marker of a group
func (c *ColorHelper) FormatStatus(passed bool) string {
	if passed {
		return c.Success("✅")
	}
	return c.Failure("❌")
}

// FormatChecks returns colored check tally based on pass/fail
func (c *ColorHelper) FormatChecks(passed, total int64) string {
	text := fmt.Sprintf("%d/%d", passed, total)
	if passed == total {
		return c.Success(text)
	}
	if passed == 0 {
		return c.Failure(text)
	}
	return c.Warning(text)
}

// FormatSuccessRate returns colored percentage based on value
func (c *ColorHelper) FormatSuccessRate(value float64) string {
	text := format.Percent(value)
	if value >= 99.0 {
		return c.Success(text)
	}
	if value >= 95.0 {
		return c.Warning(text)
	}
	return c.Failure(text)
}
