// Package format provides shared formatting utilities for human-readable output.
package format

import (
	"fmt"
	"math"
)

// Milliseconds formats a millisecond value with adaptive units:
// milliseconds below one second, seconds below one minute, minutes otherwise.
func Milliseconds(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.1fms", ms)
	}
	if ms < 60000 {
		return fmt.Sprintf("%.2fs", ms/1000)
	}

	return fmt.Sprintf("%.1fm", ms/60000)
}

// Percent formats a percentage with one decimal.
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Dollars formats a cost estimate with micro-dollar precision.
func Dollars(value float64) string {
	return fmt.Sprintf("$%.6f", value)
}

// Megabytes formats a memory figure given in MB.
func Megabytes(mb float64) string {
	return fmt.Sprintf("%.1fMB", mb)
}

// Count abbreviates large counts (K, M, B), rounding to the nearest unit.
func Count(n float64) string {
	abs := math.Abs(n)

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.0fB", n/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.0fM", n/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.0fK", n/1e3)
	}

	return fmt.Sprintf("%.0f", n)
}
