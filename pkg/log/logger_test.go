package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelDebug},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "info", Format: "json", Writer: &buf})
	t.Cleanup(func() { InitLog("info") })

	Debug("hidden")
	Info("Microservice added", "microservice", "ms1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["msg"] != "Microservice added" || record["microservice"] != "ms1" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestConfigureText(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "warn", Writer: &buf})
	t.Cleanup(func() { InitLog("info") })

	Info("hidden")
	Warn("Removed microservice is still referenced", "microservice", "ms1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "microservice=ms1") {
		t.Errorf("unexpected text record %q", out)
	}
}
