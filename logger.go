package hnsw

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the handful of fields this package's
// operations care about, the way the wider library wraps slog for its
// own operations.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger around handler. If handler is nil, logs
// go to stderr as text at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to
// stderr at the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr at the
// given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output. This is the
// default for an Index built without WithLogger.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// LogBuild logs a completed Build call.
func (l *Logger) LogBuild(itemCount, topLevel int) {
	l.Debug("build completed", "items", itemCount, "top_level", topLevel)
}

// LogSearch logs a completed KNN call.
func (l *Logger) LogSearch(k, found int) {
	l.Debug("search completed", "k", k, "found", found)
}
