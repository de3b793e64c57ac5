package shorty

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with shorty-specific context.
// This provides structured logging with consistent field names.
// Targets are logged by length only, never by value.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCode adds a code field to the logger (useful for tagging operations).
func (l *Logger) WithCode(code string) *Logger {
	return &Logger{
		Logger: l.Logger.With("code", code),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogShorten logs a shorten operation.
func (l *Logger) LogShorten(ctx context.Context, code string, targetLen int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "shorten failed",
			"target_len", targetLen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "shorten completed",
			"code", code,
			"target_len", targetLen,
		)
	}
}

// LogBatchShorten logs a batch shorten operation.
func (l *Logger) LogBatchShorten(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch shorten completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch shorten completed",
			"count", count,
		)
	}
}

// LogResolve logs a resolve operation.
func (l *Logger) LogResolve(ctx context.Context, code string, err error) {
	if err != nil {
		l.WarnContext(ctx, "resolve missed",
			"code", code,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"code", code,
		)
	}
}

// LogSetStrategy logs a strategy swap.
func (l *Logger) LogSetStrategy(from, to string) {
	l.Info("strategy changed",
		"from", from,
		"to", to,
	)
}
