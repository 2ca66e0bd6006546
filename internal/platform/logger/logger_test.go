package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line should be JSON: %s", line)
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("filters below configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)
		require.NoError(t, err)

		l.Info("hidden")
		l.Warn("shown", "key", "value")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0]["msg"])
		assert.Equal(t, "value", entries[0]["key"])
		assert.Equal(t, "swapi-gateway", entries[0]["service"])
	})

	t.Run("invalid level falls back to info with a warning", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "loud"}, &buf)
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("visible")

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 2)
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, "loud", entries[0]["configured_level"])
		assert.Equal(t, "visible", entries[1]["msg"])
	})

	t.Run("installs default logger", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, &buf)
		require.NoError(t, err)

		slog.Info("through default")
		assert.Contains(t, buf.String(), "through default")
	})

	t.Run("nil writer", func(t *testing.T) {
		_, err := logger.SetupWithWriter(config.ServerConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	ctx := logger.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logger.FromContext(ctx))
	assert.Same(t, custom, logger.FromContextOrDefault(ctx, fallback))

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}
