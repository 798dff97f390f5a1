package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/config"
)

func TestNewTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Environment: "development", LogLevel: slog.LevelInfo})

	log.Debug("hidden")
	log.Info("moved", "direction", "UP")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=moved")
	assert.Contains(t, buf.String(), "direction=UP")
}

func TestNewJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, &config.Config{Environment: "production", LogLevel: slog.LevelDebug})

	WithError(log, errors.New("boom")).Debug("failed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestSetupWritesToFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "game.log")
	_, closeLog, err := Setup(&config.Config{LogFile: path, LogLevel: slog.LevelInfo})
	require.NoError(t, err)

	slog.Info("hello from the dungeon")
	require.NoError(t, closeLog())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello from the dungeon")
}

func TestSetupWithoutFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	log, closeLog, err := Setup(&config.Config{LogLevel: slog.LevelInfo})
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, closeLog())
}

func TestSetupBadPath(t *testing.T) {
	_, _, err := Setup(&config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "game.log")})
	assert.Error(t, err)
}
