//go:build unit

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter(t *testing.T) {
	cfg := config.LogConfig{
		Level:          "warn",
		TimeZone:       "JST",
		TimeZoneOffset: 9 * 60 * 60,
		TimeFormat:     "2006-01-02T15:04:05Z07:00",
	}

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, cfg, true)

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept", "room", "101")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "101", entry["room"])
	assert.Regexp(t, `\+09:00$`, entry["time"])
}
