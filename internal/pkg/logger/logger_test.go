package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: "warn"})

	log.Info("hidden", nil)
	log.Warn("shown", map[string]interface{}{"key": "roulette_settings"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "roulette_settings") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestLoggerVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Verbose: true, JSON: true})

	log.Debug("debug line", nil)
	log.Error("failed", errors.New("boom"), nil)

	out := buf.String()
	if !strings.Contains(out, `"msg":"debug line"`) {
		t.Fatalf("debug line missing: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("error field missing: %s", out)
	}
}
