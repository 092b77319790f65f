package internal

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger from the log configuration.
// All log output goes to the given writer, which in practice is stderr:
// when the server runs on the stdio transport, stdout carries the protocol
// framing and must stay clean.
func NewLogger(cfg LogConfig, out io.Writer) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}
