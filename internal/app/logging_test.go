package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = &buf
	l := NewLogger(cfg)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogger_Format(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	l.WithField("b", 2).WithComponent("app").WithField("a", 1).Info("opened %s", "x.txt")

	expected := "2024-01-02T03:04:05.000 [INFO] milli: opened x.txt {a=1, b=2, component=app}\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestLogger_Level(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	if strings.Contains(out, "[DEBUG]") || strings.Contains(out, "[INFO]") {
		t.Errorf("messages below level were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] milli: w") || !strings.Contains(out, "[ERROR] milli: e") {
		t.Errorf("expected warn and error, got %q", out)
	}

	buf.Reset()
	l.SetLevel(LogLevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLevel did not lower the level")
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	_ = l.WithField("k", "v")

	l.Info("plain")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent logger gained child field: %q", buf.String())
	}
}

func TestLogger_Session(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	a := l.WithSession()
	b := l.WithSession()

	a.Info("one")
	b.Info("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	sessionOf := func(line string) string {
		i := strings.Index(line, "session=")
		if i < 0 {
			t.Fatalf("no session in %q", line)
		}
		return strings.TrimSuffix(line[i+len("session="):], "}")
	}
	if sessionOf(lines[0]) == sessionOf(lines[1]) {
		t.Error("sessions should differ")
	}
	if len(sessionOf(lines[0])) != 36 {
		t.Errorf("session %q is not a uuid", sessionOf(lines[0]))
	}
}

func TestNullLogger(t *testing.T) {
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
	// Must not panic.
	NullLogger.SetLevel(LogLevelDebug)
	NullLogger.WithComponent("x").Error("ignored %d", 1)
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milli.log")
	l, closer, err := OpenLogFile(path, LogLevelDebug)
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	l.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] milli: hello") {
		t.Errorf("unexpected log %q", data)
	}
}

func TestOpenLogFile_Empty(t *testing.T) {
	l, closer, err := OpenLogFile("", LogLevelDebug)
	if err != nil {
		t.Fatalf("OpenLogFile failed: %v", err)
	}
	if l != NullLogger {
		t.Error("expected NullLogger for empty path")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestOpenLogFile_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "milli.log")
	if _, _, err := OpenLogFile(path, LogLevelInfo); err == nil {
		t.Error("expected error for missing directory")
	}
}
