package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mediaconv/internal/api"
	"mediaconv/internal/config"
	"mediaconv/internal/daemon"
	"mediaconv/internal/events"
	"mediaconv/internal/ipc"
	"mediaconv/internal/jobs"
	"mediaconv/internal/testsupport"
	"mediaconv/internal/window"
)

type recordingOpener struct {
	targets []string
}

func (o *recordingOpener) Open(_ context.Context, target string) error {
	o.targets = append(o.targets, target)
	return nil
}

type cliTestEnv struct {
	cfg        *config.Config
	picker     *testsupport.Picker
	opener     *recordingOpener
	registry   *window.Registry
	socketPath string
	configPath string
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func newOfflineEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, socketPath: cfg.SocketPath(), configPath: configPath}
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	return setupCLITestEnvWithPicker(t, &testsupport.Picker{
		Files:  []string{"/in/clip.mp4", "/in/cover.PNG"},
		Folder: "/out/converted",
		File:   "/opt/ffmpeg/bin/ffmpeg",
	})
}

func setupCLITestEnvWithPicker(t *testing.T, picker *testsupport.Picker) *cliTestEnv {
	t.Helper()

	env := newOfflineEnv(t)
	cfg := env.cfg
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	hub := events.NewHub(nil)
	env.registry = window.NewRegistry(window.NewEventHost(hub), nil)
	env.picker = picker
	env.opener = &recordingOpener{}
	service := api.NewService(api.Dependencies{
		Picker:           env.picker,
		Opener:           env.opener,
		Settings:         window.NewManager(env.registry, window.SettingsOptions(cfg.Window), nil),
		Jobs:             jobs.NewController(hub, nil),
		DefaultOutputDir: cfg.Paths.DefaultOutputDir,
	})
	d, err := daemon.New(cfg, nil, daemon.Options{Service: service, Windows: env.registry, Hub: hub})
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := d.Start(ctx); err != nil {
		cancel()
		t.Fatalf("daemon Start: %v", err)
	}
	srv, err := ipc.NewServer(ctx, env.socketPath, d, nil)
	if err != nil {
		cancel()
		d.Close()
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping CLI test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()

	t.Cleanup(func() {
		cancel()
		srv.Close()
		d.Close()
	})
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--socket", env.socketPath, "--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n%s", needle, haystack)
	}
}
