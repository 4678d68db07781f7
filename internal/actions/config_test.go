package actions

import (
	"bytes"
	"testing"

	"github.com/devinsights/benchcompare/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ShowConfig(&buf, config.Default()))
	assert.Contains(t, buf.String(), "Results Directory:        results")
	assert.Contains(t, buf.String(), "Summary Suffix:           _summary.json")
}
