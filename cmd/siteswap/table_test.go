package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/siteswap-renderer/siteswap"
)

func TestExplainTableSeparatesElidedRows(t *testing.T) {
	r, err := siteswap.New(siteswap.Config{})
	require.NoError(t, err)
	result, err := r.Render("pattern: 3\nscale: 2\nfps: 60")
	require.NoError(t, err)

	lines := strings.Split(explainTable(result), "\n")
	firstElided := -1
	for i, line := range lines {
		if strings.Contains(line, "elided") {
			firstElided = i
			break
		}
	}
	require.Greater(t, firstElided, 0)
	assert.True(t, strings.HasPrefix(lines[firstElided-1], "├"), lines[firstElided-1])
	assert.Contains(t, lines[firstElided-2], "sent")
}

func TestSettingsTableRightAlignsValues(t *testing.T) {
	current := siteswap.DefaultSettings()
	current.Width = 300

	out := settingsTable(current, siteswap.DefaultSettings())
	assert.Contains(t, out, "│   300 │     400 │")
	assert.Contains(t, out, "*")

	var widthRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "width") {
			widthRow = line
		}
	}
	assert.Contains(t, widthRow, "*")
}
