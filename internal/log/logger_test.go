package log

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestInitialize(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelInfo, &buf)

	if verbosity != LevelInfo {
		t.Errorf("expected verbosity %d, got %d", LevelInfo, verbosity)
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer

	Initialize(LevelTrace, &buf)

	Info("test info", "key", "value")
	Debug("test debug", "key", "value")
	Trace("test trace", "key", "value")
	Warn("test warn", "key", "value")
	Elapsed("test elapsed", time.Now())

	out := buf.String()
	for _, msg := range []string{"test info", "test debug", "test trace", "test warn", "test elapsed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("expected output to contain %q, got %q", msg, out)
		}
	}
	if !strings.Contains(out, "elapsed=") {
		t.Errorf("expected elapsed attribute in output, got %q", out)
	}
}

func TestQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelQuiet, &buf)

	Info("hidden")
	Debug("hidden")
	Trace("hidden")
	Elapsed("hidden", time.Now())

	if buf.Len() != 0 {
		t.Errorf("expected no output at quiet level, got %q", buf.String())
	}

	Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warnings at quiet level, got %q", buf.String())
	}
}

func TestVerbosityLevels(t *testing.T) {
	tests := []struct {
		level   int
		isDebug bool
		isTrace bool
	}{
		{LevelQuiet, false, false},
		{LevelInfo, false, false},
		{LevelDebug, true, false},
		{LevelTrace, true, true},
	}

	var buf bytes.Buffer
	for _, tt := range tests {
		Initialize(tt.level, &buf)

		if IsDebug() != tt.isDebug {
			t.Errorf("at level %d: expected IsDebug()=%v, got %v", tt.level, tt.isDebug, IsDebug())
		}
		if IsTrace() != tt.isTrace {
			t.Errorf("at level %d: expected IsTrace()=%v, got %v", tt.level, tt.isTrace, IsTrace())
		}
	}
}
