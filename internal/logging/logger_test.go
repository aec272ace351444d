package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediaconv/internal/config"
	"mediaconv/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello from test")

	content, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Fatalf("expected message in log file, got %q", content)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")
	logger, err := logging.New(logging.Options{
		Format:  "console",
		Level:   "info",
		Outputs: []string{logPath, logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerPrefixesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "window").Info("settings opened", logging.String("label", "settings"))

	line := buf.String()
	if !strings.Contains(line, "INFO window: settings opened") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, "label=settings") {
		t.Fatalf("expected label attribute, got %q", line)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("careful")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" || payload["msg"] != "careful" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %#v", payload)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "shell open failed", "shell_open_failed", logging.String(logging.FieldImpact, "folder not shown"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload[logging.FieldEventType] != "shell_open_failed" {
		t.Fatalf("expected event_type, got %#v", payload)
	}
	if payload[logging.FieldErrorHint] == nil {
		t.Fatalf("expected default error_hint, got %#v", payload)
	}
	if payload[logging.FieldImpact] != "folder not shown" {
		t.Fatalf("expected caller impact to win, got %#v", payload)
	}
}

func TestWithContextAddsCorrelationFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithCorrelationID(context.Background(), "abc")
	ctx = logging.WithCommand(ctx, "pick_files")
	logging.WithContext(ctx, logger).Info("served")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload[logging.FieldCorrelationID] != "abc" || payload[logging.FieldCommand] != "pick_files" {
		t.Fatalf("missing context fields: %#v", payload)
	}
}

func TestJSONLoggerReportsCallerAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("probe")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	caller, _ := payload["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Fatalf("expected caller key, got %#v", payload)
	}
	if _, ok := payload["source"]; ok {
		t.Fatalf("source key should be renamed, got %#v", payload)
	}
}

func TestDaemonOutputs(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = "/var/log/mediaconv"
	got := logging.DaemonOutputs(&cfg)
	if len(got) != 2 || got[0] != "stdout" || got[1] != cfg.LogPath() {
		t.Fatalf("unexpected outputs %v", got)
	}
	if got := logging.DaemonOutputs(nil); len(got) != 1 || got[0] != "stdout" {
		t.Fatalf("unexpected outputs for nil config %v", got)
	}
}
