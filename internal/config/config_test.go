package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediaconv/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "mediaconv", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if want := filepath.Join(tempHome, ".local", "share", "mediaconv"); cfg.Paths.StateDir != want {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, want)
	}
	if want := filepath.Join(tempHome, "Videos", "converted"); cfg.Paths.DefaultOutputDir != want {
		t.Fatalf("unexpected default output dir: got %q want %q", cfg.Paths.DefaultOutputDir, want)
	}
	if cfg.Paths.APIBind != "127.0.0.1:7488" {
		t.Fatalf("unexpected api bind: %q", cfg.Paths.APIBind)
	}
	if cfg.Dialog.Backend != config.DialogAuto {
		t.Fatalf("unexpected dialog backend: %q", cfg.Dialog.Backend)
	}
	if cfg.Window.SettingsWidth != 860 || cfg.Window.SettingsHeight != 760 {
		t.Fatalf("unexpected settings size: %dx%d", cfg.Window.SettingsWidth, cfg.Window.SettingsHeight)
	}
	if cfg.Window.SettingsTitle != "Налаштування" {
		t.Fatalf("unexpected settings title: %q", cfg.Window.SettingsTitle)
	}
	if cfg.Window.LaunchBrowser {
		t.Fatal("expected browser launch disabled by default")
	}
	if cfg.FFmpegBinary() != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.FFmpegBinary())
	}
	if cfg.SocketPath() != filepath.Join(cfg.Paths.StateDir, "mediaconv.sock") {
		t.Fatalf("unexpected socket path: %q", cfg.SocketPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.DefaultOutputDir); !os.IsNotExist(err) {
		t.Fatalf("expected default output dir to stay uncreated, stat err=%v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mediaconv.toml")

	type payload struct {
		Paths struct {
			StateDir string `toml:"state_dir"`
			APIBind  string `toml:"api_bind"`
		} `toml:"paths"`
		Dialog struct {
			Backend string `toml:"backend"`
		} `toml:"dialog"`
		Window struct {
			SettingsWidth int `toml:"settings_width"`
		} `toml:"window"`
		FFmpeg struct {
			Path string `toml:"path"`
		} `toml:"ffmpeg"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Paths.APIBind = " 127.0.0.1:9000 "
	custom.Dialog.Backend = " Zenity "
	custom.Window.SettingsWidth = 1024
	custom.FFmpeg.Path = filepath.Join(tempDir, "bin", "ffmpeg")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q to exist, got %q exists=%v", configPath, resolved, exists)
	}
	if cfg.Paths.StateDir != custom.Paths.StateDir {
		t.Fatalf("unexpected state dir: %q", cfg.Paths.StateDir)
	}
	if cfg.Paths.APIBind != "127.0.0.1:9000" {
		t.Fatalf("expected trimmed api bind, got %q", cfg.Paths.APIBind)
	}
	if cfg.Dialog.Backend != config.DialogZenity {
		t.Fatalf("expected normalized backend, got %q", cfg.Dialog.Backend)
	}
	if cfg.Window.SettingsWidth != 1024 || cfg.Window.SettingsHeight != 760 {
		t.Fatalf("unexpected settings size: %dx%d", cfg.Window.SettingsWidth, cfg.Window.SettingsHeight)
	}
	if cfg.FFmpegBinary() != custom.FFmpeg.Path {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.FFmpegBinary())
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "backend", body: "[dialog]\nbackend = \"gtk\"\n", wantErr: "dialog.backend"},
		{name: "width", body: "[window]\nsettings_width = -1\n", wantErr: "window.settings_width"},
		{name: "bind", body: "[paths]\napi_bind = \"localhost\"\n", wantErr: "paths.api_bind"},
		{name: "level", body: "[logging]\nlevel = \"verbose\"\n", wantErr: "logging.level"},
		{name: "syntax", body: "[paths\n", wantErr: "parse config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Dialog.Backend != config.DialogAuto {
		t.Fatalf("sample should keep defaults, got backend %q", cfg.Dialog.Backend)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "media") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
