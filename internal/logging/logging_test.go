package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger

	return buf.String()
}

// captureLogOutputWithInit reinitializes the logger on a buffer so the
// ReplaceAttr logic of InitLogger is exercised.
func captureLogOutputWithInit(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	SetOutput(&buf)
	InitLogger(level, format)

	f()

	SetOutput(os.Stderr)
	InitLogger(LevelWarn, FormatText)

	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{name: "Debug level JSON format", level: LevelDebug, format: FormatJSON},
		{name: "Info level JSON format", level: LevelInfo, format: FormatJSON},
		{name: "Warn level Text format", level: LevelWarn, format: FormatText},
		{name: "Error level Text format", level: LevelError, format: FormatText},
		{name: "Default level (invalid value)", level: Level(999), format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"trace", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitLoggerTimestampFormat(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatJSON, func() {
		Info("hello")
	})
	if !strings.Contains(output, `"time":"`) {
		t.Fatalf("Expected a time attribute, got %q", output)
	}
	start := strings.Index(output, `"time":"`) + len(`"time":"`)
	end := strings.Index(output[start:], `"`)
	if _, err := time.Parse(time.RFC3339, output[start:start+end]); err != nil {
		t.Errorf("time attribute is not RFC3339: %v", err)
	}
}

func TestTraceEnabled(t *testing.T) {
	captureLogOutputWithInit(LevelDebug, FormatText, func() {
		if !TraceEnabled() {
			t.Error("TraceEnabled() = false at debug level, want true")
		}
	})
	captureLogOutputWithInit(LevelWarn, FormatText, func() {
		if TraceEnabled() {
			t.Error("TraceEnabled() = true at warn level, want false")
		}
	})
}

func TestGetRunID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "Context with run ID",
			ctx:      WithRunID(context.Background(), "run-1"),
			expected: "run-1",
		},
		{
			name:     "Context without run ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "Context with wrong type value",
			ctx:      context.WithValue(context.Background(), RunIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetRunID(tt.ctx); got != tt.expected {
				t.Errorf("GetRunID() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContextLoggingFunctions(t *testing.T) {
	ctx := WithRunID(context.Background(), "test-run-id")

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "DebugContext", fn: func() { DebugContext(ctx, "debug message", "key", "value") }},
		{name: "InfoContext", fn: func() { InfoContext(ctx, "info message", "key", "value") }},
		{name: "WarnContext", fn: func() { WarnContext(ctx, "warning message", "key", "value") }},
		{name: "ErrorContext", fn: func() { ErrorContext(ctx, "error message", "key", "value") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if !strings.Contains(output, "test-run-id") {
				t.Errorf("Expected output to contain run ID, got %q", output)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{name: "Debug", fn: func() { Debug("debug message") }, want: "debug message"},
		{name: "Info", fn: func() { Info("info message") }, want: "info message"},
		{name: "Warn", fn: func() { Warn("warning message") }, want: "warning message"},
		{name: "Error", fn: func() { Error("error message") }, want: "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if !strings.Contains(output, tt.want) {
				t.Errorf("output = %q, want it to contain %q", output, tt.want)
			}
		})
	}
}

func TestDomainHelpers(t *testing.T) {
	tests := []struct {
		name  string
		fn    func()
		wants []string
	}{
		{
			name:  "PassStarted",
			fn:    func() { PassStarted("3", "msr2bsr", "song.xml") },
			wants: []string{"pass_started", `"pass_id":"3"`, "song.xml"},
		},
		{
			name:  "PassFinished",
			fn:    func() { PassFinished("3", 20*time.Millisecond, 2) },
			wants: []string{"pass_finished", `"duration_ms":20`, `"warnings":2`},
		},
		{
			name:  "PassFailed",
			fn:    func() { PassFailed("3", errors.New("boom")) },
			wants: []string{"pass_failed", "boom"},
		},
		{
			name:  "TranslationWarning",
			fn:    func() { TranslationWarning("song.xml", 12, "clef not supported") },
			wants: []string{"translation_warning", `"line":12`, "clef not supported"},
		},
		{
			name:  "ScoreLoaded",
			fn:    func() { ScoreLoaded("song.xml", 2, 16, "voices", 3) },
			wants: []string{"score_loaded", `"parts":2`, `"measures":16`, `"voices":3`},
		},
		{
			name:  "RunRecorded",
			fn:    func() { RunRecorded("abc", "deadbeef") },
			wants: []string{"run_recorded", "abc", "deadbeef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			for _, want := range tt.wants {
				if !strings.Contains(output, want) {
					t.Errorf("output = %q, want it to contain %q", output, want)
				}
			}
		})
	}
}
