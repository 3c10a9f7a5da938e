// Package logging provides tests for loggers and run log files.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewRunLog(t *testing.T) {
	t.Run("creates nested dir and file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs", "nested")
		rl, err := NewRunLog(dir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer rl.Close()

		if rl.RunID == "" {
			t.Error("expected RunID to be set")
		}
		if filepath.Dir(rl.LogPath) != rl.Dir {
			t.Errorf("LogPath %q not inside Dir %q", rl.LogPath, rl.Dir)
		}
		if !strings.HasSuffix(rl.LogPath, ".jsonl") {
			t.Errorf("LogPath: got %q, want .jsonl suffix", rl.LogPath)
		}
		if _, err := os.Stat(rl.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty dir returns error", func(t *testing.T) {
		_, err := NewRunLog("")
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected empty dir error, got %v", err)
		}
	})
}

func TestRunLogJSONLines(t *testing.T) {
	rl, err := NewRunLog(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := NewFromConfig(rl.Writer(), "debug", "json", false, false)
	logger.Info("task added", "category", "work")
	if err := rl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(rl.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if entry["msg"] != "task added" || entry["category"] != "work" {
		t.Errorf("entry: got %v", entry)
	}
}

func TestRunLogCloseNil(t *testing.T) {
	var rl *RunLog
	if err := rl.Close(); err != nil {
		t.Errorf("Close on nil: got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input string
		want  log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"", log.TextFormatter},
	}
	for _, tt := range tests {
		if got := ParseFormatter(tt.input); got != tt.want {
			t.Errorf("ParseFormatter(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewFromConfigLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "warn", "text", false, false)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "WARN") {
		t.Errorf("expected warn line, got: %s", out)
	}
	if !strings.Contains(out, "planner") {
		t.Errorf("expected prefix, got: %s", out)
	}
}

func TestFindLatestLog(t *testing.T) {
	dir := t.TempDir()

	got, err := FindLatestLog(filepath.Join(dir, "missing"))
	if err != nil || got != "" {
		t.Fatalf("missing dir: got %q, %v", got, err)
	}

	older := filepath.Join(dir, "20260101-000000-1.jsonl")
	newer := filepath.Join(dir, "20260102-000000-2.jsonl")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{older, newer, other} {
		if err := os.WriteFile(p, []byte("{}\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got, err = FindLatestLog(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != newer {
		t.Errorf("FindLatestLog: got %q, want %q", got, newer)
	}
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	if err := os.WriteFile(path, []byte("line1\nline2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := TailLog(context.Background(), &buf, path, false); err != nil {
		t.Fatalf("TailLog failed: %v", err)
	}
	if buf.String() != "line1\nline2\n" {
		t.Errorf("TailLog: got %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf.Reset()
	if err := TailLog(ctx, &buf, path, true); err != nil {
		t.Fatalf("TailLog follow failed: %v", err)
	}

	if err := TailLog(context.Background(), &buf, filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("expected error for missing file")
	}
}
