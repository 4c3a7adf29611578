package natbitset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with natbitset-specific context.
// This provides structured logging with consistent field names.
//
// Bitsets never log on their own; they implement slog.LogValuer so they can be
// passed directly as attribute values.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDomain adds the domain bound and word width to the logger.
func (l *Logger) WithDomain(n, width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "width", width),
	}
}

// LogEncode logs the outcome of encoding count bitsets into size bytes.
func (l *Logger) LogEncode(ctx context.Context, count int, size int64, compression string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"count", count,
			"compression", compression,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"count", count,
			"bytes", size,
			"compression", compression,
		)
	}
}

// LogDecode logs the outcome of decoding count bitsets.
func (l *Logger) LogDecode(ctx context.Context, count int, compression string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"count", count,
			"compression", compression,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"count", count,
			"compression", compression,
		)
	}
}
