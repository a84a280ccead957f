package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on environment.
// LOG_LEVEL (debug|info|warn|error) overrides the environment default.
func Setup(env string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	jsonFormat := false

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		jsonFormat = true
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
	}

	if level, ok := parseLevel(os.Getenv("LOG_LEVEL")); ok {
		opts.Level = level
	}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String())
	return logger
}

func parseLevel(value string) (slog.Level, bool) {
	var level slog.Level
	if strings.TrimSpace(value) == "" {
		return level, false
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return level, false
	}
	return level, true
}
