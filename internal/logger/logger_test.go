package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "json", Level: slog.LevelInfo})

	log.Info("hello", "song_id", "song-1")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"song_id":"song-1"`) {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestNewProductionDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "production"})

	log.Info("boot")

	if !strings.Contains(buf.String(), `"msg":"boot"`) {
		t.Errorf("expected JSON output in production, got %q", buf.String())
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty", Level: slog.LevelDebug})

	log.Debug("ranked songs", "count", 6)

	out := buf.String()
	if !strings.Contains(out, "ranked songs") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "count=6") {
		t.Errorf("expected attribute in output, got %q", out)
	}
	if !strings.Contains(out, "DBG") {
		t.Errorf("expected level tag in output, got %q", out)
	}
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty", Level: slog.LevelWarn})

	log.Info("should be dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output below min level, got %q", buf.String())
	}
}
