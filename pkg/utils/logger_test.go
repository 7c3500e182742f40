package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/perf-analysis/bvhtraverse/internal/testutil"
)

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(LevelInfo, &buf)

	logger.Debug("hidden %d", 1)
	logger.Info("visible %d", 2)
	logger.Warn("also visible")

	out := buf.String()
	testutil.AssertNotContains(t, out, "hidden")
	testutil.AssertContains(t, out, "visible 2")
	testutil.AssertContains(t, out, "[INFO]")
	testutil.AssertContains(t, out, "[WARN]")
}

func TestDefaultLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(LevelError, &buf)

	logger.Info("before")
	logger.SetLevel(LevelDebug)
	logger.Debug("after")

	out := buf.String()
	testutil.AssertNotContains(t, out, "before")
	testutil.AssertContains(t, out, "after")
}

func TestDefaultLogger_FieldsSortedAndInherited(t *testing.T) {
	var buf bytes.Buffer
	base := NewDefaultLogger(LevelDebug, &buf)

	derived := base.WithField("level", 3).WithField("component", "expander")
	derived.Info("expanding")

	out := buf.String()
	// Sorted by key: component before level.
	idxComponent := strings.Index(out, "component=expander")
	idxLevel := strings.Index(out, "level=3")
	if idxComponent < 0 || idxLevel < 0 {
		t.Fatalf("expected both fields in output, got %q", out)
	}
	if idxComponent > idxLevel {
		t.Errorf("expected fields sorted by key, got %q", out)
	}

	// The base logger must not have picked up the field.
	buf.Reset()
	base.Info("plain")
	testutil.AssertNotContains(t, buf.String(), "component=")
}

func TestNullLogger_ImplementsLogger(t *testing.T) {
	var logger Logger = &NullLogger{}

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	if logger.WithField("k", "v") != logger {
		t.Error("expected NullLogger.WithField to return the same instance")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLogLevel(c.in); got != c.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLogLevel_String(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarn:    "WARN",
		LevelError:   "ERROR",
		LogLevel(42): "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
