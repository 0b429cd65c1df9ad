package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/siteswap-renderer/internal/config"
	"github.com/rgonek/siteswap-renderer/internal/logging"
)

func TestConsoleLoggerWritesLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("block rendered", "pattern", "531", "query", "redirect=true;pattern=531")
	logger.Debug("hidden")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, " INFO block rendered pattern=531 query=\"redirect=true;pattern=531\"")
	assert.NotContains(t, out, "hidden")
}

func TestConsoleLoggerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.With("component", "cli").WithGroup("render").Debug("merged", "keys", 3, "note", "two words")

	out := buf.String()
	assert.Contains(t, out, "DEBUG merged component=cli render.keys=3 render.note=\"two words\"")
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "JSON", Output: &buf})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("unknown parameter", "key", "wobble")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "unknown parameter", entry["msg"])
	assert.Equal(t, "wobble", entry["key"])
	assert.Contains(t, entry, "ts")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported value "xml"`)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"

	var buf bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &buf)
	require.NoError(t, err)

	logger.Warn("quiet")
	logger.Error("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "ERROR loud")
}
