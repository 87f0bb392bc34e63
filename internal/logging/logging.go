package logging

import (
	"log/slog"
	"os"
)

// Setup builds the process-wide JSON logger.
func Setup(appName string, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With(
		slog.String("app", appName),
	)
}
