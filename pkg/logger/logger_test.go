package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "debug uppercase", level: "DEBUG", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "warning", level: " Warning ", want: slog.LevelWarn},
		{name: "error", level: "ERROR", want: slog.LevelError},
		{name: "unknown defaults to info", level: "verbose", want: slog.LevelInfo},
		{name: "empty defaults to info", level: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
			log := New(tt.level)
			if !log.Enabled(context.Background(), tt.want) {
				t.Fatalf("expected logger enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && log.Enabled(context.Background(), slog.LevelDebug) {
				t.Fatal("expected debug to be disabled")
			}
		})
	}
}

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	log.Info("block rendered", BlockFields("webblock-1", "html"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if record["msg"] != "block rendered" {
		t.Fatalf("unexpected msg %v", record["msg"])
	}
	block, ok := record["block"].(map[string]any)
	if !ok {
		t.Fatalf("expected block group, got %v", record["block"])
	}
	if block["mount_id"] != "webblock-1" || block["renderer"] != "html" {
		t.Fatalf("unexpected block fields %v", block)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %q", got)
	}
}
