package ipc_test

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"mediaconv/internal/api"
	"mediaconv/internal/daemon"
	"mediaconv/internal/events"
	"mediaconv/internal/ipc"
	"mediaconv/internal/jobs"
	"mediaconv/internal/media"
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

func TestIPCServerClient(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	hub := events.NewHub(nil)
	registry := window.NewRegistry(window.NewEventHost(hub), nil)
	picker := &testsupport.Picker{
		Files:  []string{"/in/clip.mp4", "/in/shot.JPG"},
		Folder: "/out/converted",
		File:   "/opt/ffmpeg/bin/ffmpeg",
	}
	opener := &recordingOpener{}
	service := api.NewService(api.Dependencies{
		Picker:           picker,
		Opener:           opener,
		Settings:         window.NewManager(registry, window.SettingsOptions(cfg.Window), nil),
		Jobs:             jobs.NewController(hub, nil),
		DefaultOutputDir: cfg.Paths.DefaultOutputDir,
	})
	d, err := daemon.New(cfg, nil, daemon.Options{Service: service, Windows: registry, Hub: hub})
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := d.Start(ctx); err != nil {
		t.Fatalf("daemon Start: %v", err)
	}

	var shutdowns atomic.Int32
	socket := filepath.Join(cfg.Paths.StateDir, "ipc-test.sock")
	srv, err := ipc.NewServer(ctx, socket, d, nil, ipc.WithShutdown(func() { shutdowns.Add(1) }))
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping IPC server test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		srv.Close()
	})

	client, err := ipc.Dial(socket)
	if err != nil {
		t.Fatalf("ipc.Dial: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status RPC failed: %v", err)
	}
	if !status.Running || status.LockFilePath != cfg.LockPath() {
		t.Fatalf("unexpected status %+v", status)
	}

	items, err := client.PickFiles()
	if err != nil {
		t.Fatalf("PickFiles: %v", err)
	}
	if len(items) != 2 || items[0].Kind != media.KindVideo || items[1].Kind != media.KindPhoto {
		t.Fatalf("unexpected items %+v", items)
	}
	if items[0].ID == items[1].ID {
		t.Fatal("expected distinct ids")
	}

	folder, err := client.PickFolder()
	if err != nil || len(folder) != 1 || folder[0].Name != "folder_item.jpg" {
		t.Fatalf("PickFolder = %+v, %v", folder, err)
	}

	if out, err := client.PickOutput(); err != nil || out != "/out/converted" {
		t.Fatalf("PickOutput = %q, %v", out, err)
	}
	if bin, err := client.PickFFmpeg(); err != nil || bin != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("PickFFmpeg = %q, %v", bin, err)
	}
	if ok, err := client.CheckFFmpeg(); err != nil || !ok {
		t.Fatalf("CheckFFmpeg = %v, %v", ok, err)
	}

	if err := client.OpenOutput("/out/converted"); err != nil {
		t.Fatalf("OpenOutput: %v", err)
	}
	if !slices.Equal(opener.targets, []string{"/out/converted"}) {
		t.Fatalf("unexpected open targets %v", opener.targets)
	}

	for i := 0; i < 2; i++ {
		if err := client.OpenSettingsWindow(); err != nil {
			t.Fatalf("OpenSettingsWindow: %v", err)
		}
	}
	if labels := registry.Labels(); !slices.Equal(labels, []string{window.SettingsLabel}) {
		t.Fatalf("expected one settings window, got %v", labels)
	}
	closed, err := client.CloseWindow(window.SettingsLabel)
	if err != nil || !closed {
		t.Fatalf("CloseWindow = %v, %v", closed, err)
	}

	if err := client.StartConversion(ipc.StartConversionRequest{}); err != nil {
		t.Fatalf("StartConversion: %v", err)
	}
	if err := client.StopConversion(); err != nil {
		t.Fatalf("StopConversion: %v", err)
	}

	resp, err := client.Shutdown()
	if err != nil || !resp.Stopping {
		t.Fatalf("Shutdown = %+v, %v", resp, err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for shutdowns.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("shutdown hook never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDialMissingSocket(t *testing.T) {
	if _, err := ipc.Dial(filepath.Join(t.TempDir(), "absent.sock")); err == nil {
		t.Fatal("expected dial error for missing socket")
	}
}
