package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewHasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)

	New("solver").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "component=solver") {
		t.Errorf("expected component attribute, got: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message, got: %s", out)
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	New("pipeline").Info("event", "count", 3)

	out := buf.String()
	if !strings.Contains(out, `"component":"pipeline"`) {
		t.Errorf("expected JSON component field, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
