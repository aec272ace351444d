package main

import (
	"bytes"
	"strings"
	"testing"

	"mediaconv/internal/ipc"
)

func TestRenderStatusLine(t *testing.T) {
	got := renderStatusLine("Dialog", statusOK, "Ready", false)
	if got != "  Dialog:          [OK] Ready" {
		t.Fatalf("unexpected line %q", got)
	}
	colored := renderStatusLine("Dialog", statusError, "", true)
	if !strings.HasPrefix(colored, "\x1b[31m") || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red line, got %q", colored)
	}
}

func TestShouldColorizeNonTerminal(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestDependencyLinesFlagsMissing(t *testing.T) {
	lines := dependencyLines([]ipc.DependencyStatus{
		{Name: "Dialog", Command: "/usr/bin/zenity", Available: true},
		{Name: "Opener", Detail: "xdg-open not found in PATH"},
		{Name: "FFmpeg", Optional: true},
	}, false)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{
		"Ready (command: /usr/bin/zenity)",
		"[ERROR] xdg-open not found in PATH",
		"[WARN] not available",
		"Opener, FFmpeg",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in\n%s", want, joined)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Name", "Kind"}, [][]string{{"clip.mp4"}})
	if !strings.Contains(out, "clip.mp4") || !strings.Contains(out, "KIND") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if renderTable(nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
