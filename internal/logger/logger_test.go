package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
	l.Info("contact created", "id", "a1")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log line failed: %v", err)
	}
	if payload["msg"] != "contact created" || payload["id"] != "a1" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}

func TestInitFileWritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.log")
	closer, err := InitFile("info", "text", path)
	if err != nil {
		t.Fatalf("init file failed: %v", err)
	}
	L.Info("hola")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if !strings.Contains(string(data), "hola") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestInitFileEmptyPathDiscards(t *testing.T) {
	if _, err := InitFile("info", "text", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if L.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("discard logger should not enable debug")
	}
}

func TestContextLogger(t *testing.T) {
	custom := Discard().With("request_id", "12345")
	ctx := WithContext(context.Background(), custom)
	if FromContext(ctx) != custom {
		t.Fatal("expected the stored logger back")
	}
	if FromContext(context.Background()) != L {
		t.Fatal("expected global logger when none stored")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%s) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
