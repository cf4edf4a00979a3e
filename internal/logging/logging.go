// Package logging provides structured logging using Go's slog package.
//
// Translation output goes to stdout, so log records are written to stderr
// unless SetOutput says otherwise.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RunIDKey is the context key for translation run IDs.
	RunIDKey ContextKey = "run_id"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger

	// output is where InitLogger sends log records.
	output io.Writer = os.Stderr
)

func init() {
	// Initialize with a default logger (text format, Warn level)
	InitLogger(LevelWarn, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for trace messages emitted while browsing trees.
	LevelDebug Level = iota
	// LevelInfo is for pass-level progress messages.
	LevelInfo
	// LevelWarn is for translation warnings.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseLevel maps a CLI level name onto a Level. Unknown names map to
// LevelInfo.
func ParseLevel(name string) Level {
	switch name {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetOutput redirects subsequent InitLogger calls to w.
func SetOutput(w io.Writer) {
	output = w
}

// InitLogger initializes the global logger with the specified level and format.
func InitLogger(level Level, format Format) {
	opts := &slog.HandlerOptions{
		Level: toSlogLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// TraceEnabled reports whether debug records would be written. Visitors
// check it before formatting costly trace messages.
func TraceEnabled() bool {
	return defaultLogger.Enabled(context.Background(), slog.LevelDebug)
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// Helper functions for common logging patterns

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// DebugContext logs a debug message with context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Debug(msg, args...)
}

// InfoContext logs an info message with context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Info(msg, args...)
}

// WarnContext logs a warning message with context.
func WarnContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Warn(msg, args...)
}

// ErrorContext logs an error message with context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Error(msg, args...)
}

// PassStarted logs the beginning of a translation pass.
func PassStarted(passID, description, sourceName string, args ...any) {
	allArgs := []any{
		"pass_id", passID,
		"description", description,
		"source", sourceName,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("pass_started", allArgs...)
}

// PassFinished logs the end of a translation pass.
func PassFinished(passID string, duration time.Duration, warnings int, args ...any) {
	allArgs := []any{
		"pass_id", passID,
		"duration_ms", duration.Milliseconds(),
		"warnings", warnings,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("pass_finished", allArgs...)
}

// PassFailed logs a translation pass that stopped on an error.
func PassFailed(passID string, err error, args ...any) {
	allArgs := []any{
		"pass_id", passID,
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Error("pass_failed", allArgs...)
}

// TranslationWarning logs a non-fatal translation diagnostic.
func TranslationWarning(sourceName string, line int, message string, args ...any) {
	allArgs := []any{
		"source", sourceName,
		"line", line,
		"message", message,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Warn("translation_warning", allArgs...)
}

// ScoreLoaded logs a score handed over by a front end.
func ScoreLoaded(sourceName string, parts, measures int, args ...any) {
	allArgs := []any{
		"source", sourceName,
		"parts", parts,
		"measures", measures,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("score_loaded", allArgs...)
}

// RunRecorded logs a run written to the ledger.
func RunRecorded(runID, fingerprint string, args ...any) {
	allArgs := []any{
		"run_id", runID,
		"fingerprint", fingerprint,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("run_recorded", allArgs...)
}
