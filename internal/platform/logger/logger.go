package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/swapi-gateway/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger writing to stdout and
// sets it as the default logger.
//
// An invalid level falls back to info and a warning is emitted through the
// new logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter behaves like Setup but writes to out.
func SetupWithWriter(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	if out == nil {
		return nil, fmt.Errorf("log output writer cannot be nil")
	}

	level, levelErr := ParseLevel(cfg.LogLevel)

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	l := slog.New(handler).With(slog.String("service", "swapi-gateway"))

	if levelErr != nil {
		l.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	slog.SetDefault(l)
	return l, nil
}
