package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds the process logger from LOG_LEVEL and LOG_FORMAT and installs
// it as the slog default. Extra handlers (Sentry) receive the same records.
func Setup(level, format string, extra ...slog.Handler) *slog.Logger {
	return setup(os.Stdout, level, format, extra...)
}

func setup(w io.Writer, level, format string, extra ...slog.Handler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var base slog.Handler
	if strings.EqualFold(format, "json") {
		base = slog.NewJSONHandler(w, opts)
	} else {
		base = slog.NewTextHandler(w, opts)
	}

	handler := base
	if len(extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{base}, extra...)...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a config level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
