package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeStub(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	writeStub(t, present, 0o755)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for unset command: %q", results[2].Detail)
	}
}

func TestCheckFFmpegExplicitPath(t *testing.T) {
	dir := t.TempDir()
	ffmpeg := filepath.Join(dir, "ffmpeg")
	writeStub(t, ffmpeg, 0o755)

	status := CheckFFmpeg(ffmpeg)
	if !status.Available || status.Command != ffmpeg {
		t.Fatalf("expected explicit ffmpeg to be available, got %#v", status)
	}
	if !status.Optional {
		t.Fatal("ffmpeg should be reported as optional")
	}

	if status := CheckFFmpeg(filepath.Join(dir, "missing", "ffmpeg")); status.Available {
		t.Fatalf("expected missing path to be unavailable, got %#v", status)
	}
}

func TestCheckFFmpegRejectsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	ffmpeg := filepath.Join(t.TempDir(), "ffmpeg")
	writeStub(t, ffmpeg, 0o644)
	if status := CheckFFmpeg(ffmpeg); status.Available {
		t.Fatalf("expected non-executable file to be unavailable, got %#v", status)
	}
}

func TestCheckFFmpegPathLookup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a unix shell")
	}
	binDir := t.TempDir()
	writeStub(t, filepath.Join(binDir, "ffmpeg"), 0o755)
	t.Setenv("PATH", binDir)

	status := CheckFFmpeg("")
	if !status.Available || status.Command != filepath.Join(binDir, "ffmpeg") {
		t.Fatalf("expected PATH lookup to resolve stub, got %#v", status)
	}
}
