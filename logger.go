package fisika

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fisika-specific context.
// This provides structured logging with consistent field names.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithQuantity adds a quantity field to the logger.
func (l *Logger) WithQuantity(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("quantity", name),
	}
}

// WithUnit adds a unit field to the logger.
func (l *Logger) WithUnit(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("unit", name),
	}
}

// LogConvert logs a conversion between two named units.
func (l *Logger) LogConvert(ctx context.Context, quantity, from, to string, err error) {
	if err != nil {
		l.WarnContext(ctx, "convert failed",
			"from", from,
			"to", to,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "convert completed",
			"quantity", quantity,
			"from", from,
			"to", to,
		)
	}
}

// LogParse logs the parsing of a "<magnitude> <unit>" string.
func (l *Logger) LogParse(ctx context.Context, input, quantity string, err error) {
	if err != nil {
		l.WarnContext(ctx, "parse failed",
			"input", input,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parse completed",
			"input", input,
			"quantity", quantity,
		)
	}
}
