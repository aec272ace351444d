// Package testsupport builds configs, fake pickers, and stub executables for
// tests across packages.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediaconv/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
	pathSet bool
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DefaultOutputDir = filepath.Join(base, "converted")
	cfgVal.Paths.APIBind = "127.0.0.1:0"
	cfgVal.Dialog.Backend = config.DialogZenity

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLaunchBrowser toggles opening new windows in the default browser.
func WithLaunchBrowser(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Window.LaunchBrowser = enabled
	}
}

// WithFFmpegPath overrides the configured ffmpeg binary.
func WithFFmpegPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.FFmpeg.Path = path
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the linux picker, opener, and
// ffmpeg binaries are stubbed. Stubs print nothing and exit 0.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"zenity", "xdg-open", "ffmpeg"}
		}
		for _, name := range names {
			b.writeStub(name, "")
		}
	}
}

// WithStubOutput writes a stub executable name that prints lines, one per
// line, and exits with code. Pickers stubbed this way report a selection
// (code 0) or a cancel (code 1).
func WithStubOutput(name string, code int, lines ...string) ConfigOption {
	return func(b *configBuilder) {
		var body strings.Builder
		for _, line := range lines {
			fmt.Fprintf(&body, "printf '%%s\\n' '%s'\n", strings.ReplaceAll(line, "'", `'\''`))
		}
		fmt.Fprintf(&body, "exit %d\n", code)
		b.writeStub(name, body.String())
	}
}

func (b *configBuilder) writeStub(name, body string) {
	binDir := filepath.Join(b.baseDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		b.t.Fatalf("mkdir bin dir: %v", err)
	}
	if body == "" {
		body = "exit 0\n"
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		b.t.Fatalf("write stub %s: %v", name, err)
	}
	if b.pathSet {
		return
	}
	b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	b.pathSet = true
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
