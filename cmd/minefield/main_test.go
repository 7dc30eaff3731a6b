package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, true, false)

	logger.Debug().Msg("hidden")
	logger.Info().Str("game_id", "abc").Msg("new game")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "new game", entry["message"])
	assert.Equal(t, "abc", entry["game_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLoggerDebugConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, true)

	logger.Debug().Msg("cascade")
	assert.Contains(t, buf.String(), "cascade")
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minefield.log")

	logger, closeLog, err := setupLogger(path, true, false)
	require.NoError(t, err)
	logger.Info().Msg("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestSetupLoggerDisabled(t *testing.T) {
	_, closeLog, err := setupLogger("", false, false)
	require.NoError(t, err)
	closeLog()
}

func TestCLIValidate(t *testing.T) {
	assert.NoError(t, (&CLI{Rows: 5, Columns: 10, Bombs: 10}).Validate())
	assert.Error(t, (&CLI{Bombs: -1}).Validate())
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("HONEYCOMB_MINEFIELD_API_KEY", "key")
	t.Setenv("HONEYCOMB_MINEFIELD_DATASET", "")

	setupOTelEnv()

	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=key,x-honeycomb-dataset=minefield", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}
