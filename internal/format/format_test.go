package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilliseconds(t *testing.T) {
	tests := []struct {
		name     string
		ms       float64
		expected string
	}{
		{name: "zero", ms: 0, expected: "0.0ms"},
		{name: "sub-second", ms: 500, expected: "500.0ms"},
		{name: "just under a second", ms: 999.94, expected: "999.9ms"},
		{name: "one second", ms: 1000, expected: "1.00s"},
		{name: "seconds", ms: 1500, expected: "1.50s"},
		{name: "just under a minute", ms: 59990, expected: "59.99s"},
		{name: "one minute", ms: 60000, expected: "1.0m"},
		{name: "minutes", ms: 125000, expected: "2.1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Milliseconds(tt.ms))
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n        float64
		expected string
	}{
		{n: 12, expected: "12"},
		{n: 4200, expected: "4K"},
		{n: 365_000_000, expected: "365M"},
		{n: 2.4e9, expected: "2B"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Count(tt.n))
		})
	}
}

func TestSmallFormatters(t *testing.T) {
	assert.Equal(t, "99.5%", Percent(99.5))
	assert.Equal(t, "$0.000200", Dollars(0.0002))
	assert.Equal(t, "128.0MB", Megabytes(128))
}
