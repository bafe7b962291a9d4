package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeEntry(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v\nline: %s", err, line)
	}
	return entry
}

func TestLoggerWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("fetched schedule", Fields{"games": 12, "date": "2026-08-27"})

	entry := decodeEntry(t, strings.TrimSpace(buf.String()))
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "fetched schedule" {
		t.Errorf("message = %v, want %q", entry["message"], "fetched schedule")
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("fields missing from entry: %v", entry)
	}
	if fields["date"] != "2026-08-27" {
		t.Errorf("fields.date = %v, want 2026-08-27", fields["date"])
	}
	if entry["timestamp"] == nil {
		t.Error("entry missing timestamp")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("too quiet", nil)
	l.Info("still too quiet", nil)
	if buf.Len() != 0 {
		t.Errorf("messages below WARN should be discarded, got %q", buf.String())
	}

	l.Warn("loud enough", nil)
	if buf.Len() == 0 {
		t.Error("WARN message should be written")
	}
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError, &buf)

	l.Error("fetch failed", Fields{"endpoint": "/api/v1/schedule"}, errors.New("connection refused"))

	entry := decodeEntry(t, strings.TrimSpace(buf.String()))
	if entry["error"] != "connection refused" {
		t.Errorf("error = %v, want %q", entry["error"], "connection refused")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestSetDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defer SetDefault(prev)

	SetDefault(New(LevelDebug, &buf))
	Debug("verbose mode on", nil)

	if !strings.Contains(buf.String(), "verbose mode on") {
		t.Errorf("default logger did not receive message, got %q", buf.String())
	}
}
